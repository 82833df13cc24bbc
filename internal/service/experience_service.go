package service

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// ExperienceService defines the business logic for experience entries.
type ExperienceService interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Create(ctx context.Context, in schema.ExperienceCreate) (*model.Experience, error)
	Update(ctx context.Context, id string, in schema.ExperienceUpdate) (*model.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceServiceImpl struct {
	repo repository.ExperienceRepository
}

// NewExperienceService creates an ExperienceService backed by the given repository.
func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceServiceImpl{repo: repo}
}

func (s *experienceServiceImpl) List(ctx context.Context) ([]*model.Experience, error) {
	return s.repo.List(ctx)
}

func (s *experienceServiceImpl) Create(ctx context.Context, in schema.ExperienceCreate) (*model.Experience, error) {
	e := in.ToModel()
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *experienceServiceImpl) Update(ctx context.Context, id string, in schema.ExperienceUpdate) (*model.Experience, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *experienceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
