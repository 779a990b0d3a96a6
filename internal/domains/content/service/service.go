package service

import (
	"context"
	"encoding/json"
	"fmt"

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/shared/apperror"
)

type contentService struct {
	repo content.Repository
}

func NewContentService(repo content.Repository) content.Service {
	return &contentService{repo: repo}
}

func (s *contentService) Get(ctx context.Context, key content.SectionKey) (*content.Record, error) {
	return s.repo.GetLatest(ctx, key)
}

func (s *contentService) Update(ctx context.Context, key content.SectionKey, payload []byte) (*content.Record, error) {
	typed, ok := content.NewPayload(key)
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("unknown section %q", key))
	}

	if err := json.Unmarshal(payload, typed); err != nil {
		return nil, apperror.ValidationWrap("request body is not valid JSON", err)
	}

	// Shape validation short-circuits the write.
	if err := typed.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	// Re-marshal the typed payload so unknown fields are dropped and the
	// stored shape is canonical.
	canonical, err := json.Marshal(typed)
	if err != nil {
		return nil, apperror.Persistence("failed to encode payload", err)
	}

	return s.repo.SaveVersion(ctx, key, canonical)
}
