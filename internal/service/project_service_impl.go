package service

import (
	"context"
	"log/slog"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *projectServiceImpl) Create(ctx context.Context, in schema.ProjectCreate) (*model.Project, error) {
	p := in.ToModel()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("project created", "id", p.ID, "slug", p.Slug)
	return p, nil
}

func (s *projectServiceImpl) Update(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("project deleted", "id", id)
	return nil
}
