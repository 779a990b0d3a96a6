package service

import (
	"context"
	"time"

	"paintpro-backend/internal/domains/video"
	"paintpro-backend/internal/shared/apperror"
)

type videoService struct {
	repo video.Repository
}

func NewVideoService(repo video.Repository) video.Service {
	return &videoService{repo: repo}
}

func (s *videoService) List(ctx context.Context) ([]video.Video, error) {
	return s.repo.List(ctx)
}

func (s *videoService) Get(ctx context.Context, id int64) (*video.Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *videoService) Create(ctx context.Context, req *video.CreateRequest) (*video.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	v := &video.Video{
		Name:      req.Name,
		VideoDate: req.VideoDate,
		URL:       req.URL,
	}
	if v.VideoDate == "" {
		v.VideoDate = time.Now().Format("2006-01-02")
	}

	return s.repo.Create(ctx, v)
}

func (s *videoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
