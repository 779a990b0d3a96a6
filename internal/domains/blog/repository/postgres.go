package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/blog"
	"paintpro-backend/internal/shared/apperror"
)

// Schema:
//
//	CREATE TABLE blog_posts (
//	    id         BIGSERIAL PRIMARY KEY,
//	    title      TEXT NOT NULL,
//	    category   TEXT NOT NULL DEFAULT '',
//	    excerpt    TEXT NOT NULL DEFAULT '',
//	    content    TEXT NOT NULL,
//	    image_url  TEXT NOT NULL DEFAULT '',
//	    post_date  TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]blog.Post, error) {
	query := `
    SELECT id, title, category, excerpt, content, image_url, post_date, created_at
    FROM blog_posts
    ORDER BY created_at DESC, id DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.Persistence("failed to list blog posts", err)
	}
	defer rows.Close()

	posts := []blog.Post{}
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Excerpt, &p.Content, &p.ImageURL, &p.PostDate, &p.CreatedAt); err != nil {
			return nil, apperror.Persistence("failed to scan blog post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("error iterating blog posts", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	query := `
    SELECT id, title, category, excerpt, content, image_url, post_date, created_at
    FROM blog_posts
    WHERE id = $1
  `

	var p blog.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Category, &p.Excerpt, &p.Content, &p.ImageURL, &p.PostDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(fmt.Sprintf("blog post %d not found", id))
		}
		return nil, apperror.Persistence("failed to read blog post", err)
	}

	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	query := `
    INSERT INTO blog_posts (title, category, excerpt, content, image_url, post_date)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at
  `

	err := r.pool.QueryRow(ctx, query,
		post.Title, post.Category, post.Excerpt, post.Content, post.ImageURL, post.PostDate,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, apperror.Persistence("failed to create blog post", err)
	}

	return post, nil
}

func (r *postgresRepository) Update(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	query := `
    UPDATE blog_posts
    SET title = $2, category = $3, excerpt = $4, content = $5, image_url = $6, post_date = $7
    WHERE id = $1
    RETURNING created_at
  `

	err := r.pool.QueryRow(ctx, query,
		post.ID, post.Title, post.Category, post.Excerpt, post.Content, post.ImageURL, post.PostDate,
	).Scan(&post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(fmt.Sprintf("blog post %d not found", post.ID))
		}
		return nil, apperror.Persistence("failed to update blog post", err)
	}

	return post, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return apperror.Persistence("failed to delete blog post", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("blog post %d not found", id))
	}

	return nil
}
