package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/pkg/cache"
)

// Schema:
//
//	CREATE TABLE section_versions (
//	    id          BIGSERIAL PRIMARY KEY,
//	    section_key TEXT NOT NULL,
//	    payload     JSONB NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE INDEX idx_section_versions_latest ON section_versions (section_key, created_at DESC);
//
// Every update inserts a new row; the current version is latest created_at.
// History accumulates unboundedly and is never pruned.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

const cacheTTL = time.Minute

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) content.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: c,
	}
}

func cacheKey(key content.SectionKey) string {
	return "content:" + string(key)
}

func (r *postgresRepository) GetLatest(ctx context.Context, key content.SectionKey) (*content.Record, error) {
	if r.cache != nil {
		var cached content.Record
		if found, err := r.cache.Get(ctx, cacheKey(key), &cached); err == nil && found {
			return &cached, nil
		}
	}

	query := `
    SELECT id, section_key, payload, created_at
    FROM section_versions
    WHERE section_key = $1
    ORDER BY created_at DESC, id DESC
    LIMIT 1
  `

	row := r.pool.QueryRow(ctx, query, string(key))

	var rec content.Record
	err := row.Scan(&rec.ID, &rec.Key, &rec.Payload, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(fmt.Sprintf("no content found for section %q", key))
		}
		return nil, apperror.Persistence("failed to read section version", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey(key), &rec, cacheTTL)
	}

	return &rec, nil
}

func (r *postgresRepository) SaveVersion(ctx context.Context, key content.SectionKey, payload json.RawMessage) (*content.Record, error) {
	query := `
    INSERT INTO section_versions (section_key, payload)
    VALUES ($1, $2)
    RETURNING id
  `

	var id int64
	if err := r.pool.QueryRow(ctx, query, string(key), payload).Scan(&id); err != nil {
		return nil, apperror.Persistence("failed to insert section version", err)
	}

	// Invalidate before the confirmation read so GET-after-PUT is never stale.
	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(key))
	}

	return r.GetLatest(ctx, key)
}
