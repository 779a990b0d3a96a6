package service

import (
	"context"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/shared/apperror"
)

type clientsService struct {
	repo clients.Repository
}

func NewClientsService(repo clients.Repository) clients.Service {
	return &clientsService{repo: repo}
}

func (s *clientsService) Get(ctx context.Context) (*clients.Section, error) {
	return s.repo.GetLatest(ctx)
}

func (s *clientsService) Update(ctx context.Context, req *clients.UpdateRequest) (*clients.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.SaveVersion(ctx, req.Heading, req.Clients)
}

func (s *clientsService) Add(ctx context.Context, item *clients.ItemInput) (*clients.Section, error) {
	if err := item.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.AddItem(ctx, *item)
}

func (s *clientsService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *clientsService) Reorder(ctx context.Context, req *clients.ReorderRequest) (*clients.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.Reorder(ctx, req.ClientIDs)
}
