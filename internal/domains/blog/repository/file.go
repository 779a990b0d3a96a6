package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paintpro-backend/internal/domains/blog"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository keeps all posts in blogs.json, newest first. New posts get
// millisecond-timestamp IDs so they never collide with earlier ones.
type fileRepository struct {
	path string
	now  func() time.Time
}

func NewFileRepository(dataDir string) blog.Repository {
	return &fileRepository{
		path: filepath.Join(dataDir, "blogs.json"),
		now:  time.Now,
	}
}

func (r *fileRepository) load() ([]blog.Post, bool, error) {
	var posts []blog.Post
	found, err := storejson.Read(r.path, &posts)
	if err != nil {
		return nil, false, apperror.Persistence("failed to read blogs file", err)
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return posts, found, nil
}

func (r *fileRepository) save(posts []blog.Post) error {
	if err := storejson.Write(r.path, posts); err != nil {
		return apperror.Persistence("failed to write blogs file", err)
	}
	return nil
}

func (r *fileRepository) List(ctx context.Context) ([]blog.Post, error) {
	posts, _, err := r.load()
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	posts, _, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("blog post %d not found", id))
}

func (r *fileRepository) Create(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	posts, _, err := r.load()
	if err != nil {
		return nil, err
	}

	post.ID = r.now().UnixMilli()
	post.CreatedAt = r.now()
	posts = append([]blog.Post{*post}, posts...)

	if err := r.save(posts); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *fileRepository) Update(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	posts, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound(fmt.Sprintf("blog post %d not found", post.ID))
	}

	for i := range posts {
		if posts[i].ID == post.ID {
			post.CreatedAt = posts[i].CreatedAt
			posts[i] = *post
			if err := r.save(posts); err != nil {
				return nil, err
			}
			return post, nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("blog post %d not found", post.ID))
}

func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	posts, found, err := r.load()
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound(fmt.Sprintf("blog post %d not found", id))
	}

	kept := posts[:0]
	removed := false
	for _, p := range posts {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return apperror.NotFound(fmt.Sprintf("blog post %d not found", id))
	}

	if len(kept) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return apperror.Persistence("failed to remove blogs file", err)
		}
		return nil
	}

	return r.save(kept)
}
