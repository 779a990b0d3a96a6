package service

import (
	"context"

	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/shared/apperror"
)

type projectsService struct {
	repo projects.Repository
}

func NewProjectsService(repo projects.Repository) projects.Service {
	return &projectsService{repo: repo}
}

func (s *projectsService) Get(ctx context.Context) (*projects.Section, error) {
	return s.repo.GetLatest(ctx)
}

func (s *projectsService) Update(ctx context.Context, req *projects.UpdateRequest) (*projects.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.SaveVersion(ctx, req.Heading, req.Description, req.Projects)
}

func (s *projectsService) Add(ctx context.Context, item *projects.ItemInput) (*projects.Section, error) {
	if err := item.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.AddItem(ctx, *item)
}

func (s *projectsService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *projectsService) Reorder(ctx context.Context, req *projects.ReorderRequest) (*projects.Section, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.repo.Reorder(ctx, req.ProjectIDs)
}
