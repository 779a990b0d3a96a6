package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/video"
	"paintpro-backend/internal/shared/apperror"
)

// Schema:
//
//	CREATE TABLE videos (
//	    id         BIGSERIAL PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    video_date TEXT NOT NULL DEFAULT '',
//	    url        TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) video.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]video.Video, error) {
	query := `
    SELECT id, name, video_date, url, created_at
    FROM videos
    ORDER BY created_at DESC, id DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.Persistence("failed to list videos", err)
	}
	defer rows.Close()

	videos := []video.Video{}
	for rows.Next() {
		var v video.Video
		if err := rows.Scan(&v.ID, &v.Name, &v.VideoDate, &v.URL, &v.CreatedAt); err != nil {
			return nil, apperror.Persistence("failed to scan video", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("error iterating videos", err)
	}

	return videos, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*video.Video, error) {
	query := `
    SELECT id, name, video_date, url, created_at
    FROM videos
    WHERE id = $1
  `

	var v video.Video
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.VideoDate, &v.URL, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(fmt.Sprintf("video %d not found", id))
		}
		return nil, apperror.Persistence("failed to read video", err)
	}

	return &v, nil
}

func (r *postgresRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	query := `
    INSERT INTO videos (name, video_date, url)
    VALUES ($1, $2, $3)
    RETURNING id, created_at
  `

	err := r.pool.QueryRow(ctx, query, v.Name, v.VideoDate, v.URL).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return nil, apperror.Persistence("failed to create video", err)
	}

	return v, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return apperror.Persistence("failed to delete video", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("video %d not found", id))
	}

	return nil
}
