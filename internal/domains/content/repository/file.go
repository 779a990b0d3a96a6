package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository persists each section as one pretty-printed JSON file under
// the data directory (hero.json, about.json, ...). Whole-file read-modify-write,
// no transaction: concurrent writers race and the last write wins.
type fileRepository struct {
	dataDir string
}

func NewFileRepository(dataDir string) content.Repository {
	return &fileRepository{dataDir: dataDir}
}

func (r *fileRepository) path(key content.SectionKey) string {
	return filepath.Join(r.dataDir, string(key)+".json")
}

func (r *fileRepository) GetLatest(ctx context.Context, key content.SectionKey) (*content.Record, error) {
	var payload json.RawMessage
	found, err := storejson.Read(r.path(key), &payload)
	if err != nil {
		return nil, apperror.Persistence("failed to read section file", err)
	}
	if !found {
		return nil, apperror.NotFound(fmt.Sprintf("no content found for section %q", key))
	}

	createdAt := time.Now()
	if info, err := os.Stat(r.path(key)); err == nil {
		createdAt = info.ModTime()
	}

	return &content.Record{
		Key:       key,
		Payload:   payload,
		CreatedAt: createdAt,
	}, nil
}

func (r *fileRepository) SaveVersion(ctx context.Context, key content.SectionKey, payload json.RawMessage) (*content.Record, error) {
	var v interface{}
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, apperror.ValidationWrap("payload is not valid JSON", err)
	}

	if err := storejson.Write(r.path(key), v); err != nil {
		return nil, apperror.Persistence("failed to write section file", err)
	}

	return r.GetLatest(ctx, key)
}
