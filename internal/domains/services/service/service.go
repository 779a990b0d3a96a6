package service

import (
	"context"

	"paintpro-backend/internal/domains/services"
	"paintpro-backend/internal/shared/apperror"
)

type servicesService struct {
	repo services.Repository
}

func NewServicesService(repo services.Repository) services.Service {
	return &servicesService{repo: repo}
}

func (s *servicesService) Get(ctx context.Context) (*services.Section, error) {
	return s.repo.GetLatest(ctx)
}

func (s *servicesService) Update(ctx context.Context, req *services.UpdateRequest) (*services.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.SaveVersion(ctx, req.Heading, req.Subheading, req.Services)
}

func (s *servicesService) Add(ctx context.Context, item *services.ItemInput) (*services.Section, error) {
	if err := item.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.AddItem(ctx, *item)
}

func (s *servicesService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *servicesService) Reorder(ctx context.Context, req *services.ReorderRequest) (*services.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.Reorder(ctx, req.ServiceIDs)
}
