package service

import (
	"context"
	"time"

	"paintpro-backend/internal/blogstore"
	"paintpro-backend/internal/domains/blog"
	"paintpro-backend/internal/shared/apperror"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]blog.Post, error) {
	return s.repo.List(ctx)
}

func (s *blogService) Get(ctx context.Context, id int64) (*blog.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, req *blog.CreateRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	post := &blog.Post{
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Content:  blogstore.CleanContent(req.Content),
		ImageURL: req.ImageURL,
		PostDate: req.PostDate,
	}
	if post.Category == "" {
		post.Category = blogstore.UncategorizedName
	}
	if post.PostDate == "" {
		post.PostDate = time.Now().Format("2006-01-02")
	}

	return s.repo.Create(ctx, post)
}

func (s *blogService) Update(ctx context.Context, req *blog.UpdateRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	post := &blog.Post{
		ID:       req.ID,
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Content:  blogstore.CleanContent(req.Content),
		ImageURL: req.ImageURL,
		PostDate: req.PostDate,
	}
	if post.Category == "" {
		post.Category = existing.Category
	}
	if post.PostDate == "" {
		post.PostDate = existing.PostDate
	}

	return s.repo.Update(ctx, post)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
