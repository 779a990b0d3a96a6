package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paintpro-backend/internal/domains/video"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository keeps all videos in videos.json, newest first.
type fileRepository struct {
	path string
	now  func() time.Time
}

func NewFileRepository(dataDir string) video.Repository {
	return &fileRepository{
		path: filepath.Join(dataDir, "videos.json"),
		now:  time.Now,
	}
}

func (r *fileRepository) load() ([]video.Video, bool, error) {
	var videos []video.Video
	found, err := storejson.Read(r.path, &videos)
	if err != nil {
		return nil, false, apperror.Persistence("failed to read videos file", err)
	}
	if videos == nil {
		videos = []video.Video{}
	}
	return videos, found, nil
}

func (r *fileRepository) save(videos []video.Video) error {
	if err := storejson.Write(r.path, videos); err != nil {
		return apperror.Persistence("failed to write videos file", err)
	}
	return nil
}

func (r *fileRepository) List(ctx context.Context) ([]video.Video, error) {
	videos, _, err := r.load()
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id int64) (*video.Video, error) {
	videos, _, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range videos {
		if videos[i].ID == id {
			return &videos[i], nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("video %d not found", id))
}

func (r *fileRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	videos, _, err := r.load()
	if err != nil {
		return nil, err
	}

	v.ID = r.now().UnixMilli()
	v.CreatedAt = r.now()
	videos = append([]video.Video{*v}, videos...)

	if err := r.save(videos); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	videos, found, err := r.load()
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound(fmt.Sprintf("video %d not found", id))
	}

	kept := videos[:0]
	removed := false
	for _, v := range videos {
		if v.ID == id {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	if !removed {
		return apperror.NotFound(fmt.Sprintf("video %d not found", id))
	}

	if len(kept) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return apperror.Persistence("failed to remove videos file", err)
		}
		return nil
	}

	return r.save(kept)
}
