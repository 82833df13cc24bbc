package service

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// SkillService defines the business logic for skills.
type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Create(ctx context.Context, in schema.SkillCreate) (*model.Skill, error)
	Update(ctx context.Context, id string, in schema.SkillUpdate) (*model.Skill, error)
	Delete(ctx context.Context, id string) error
}

type skillServiceImpl struct {
	repo repository.SkillRepository
}

// NewSkillService creates a SkillService backed by the given repository.
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillServiceImpl{repo: repo}
}

func (s *skillServiceImpl) List(ctx context.Context) ([]*model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillServiceImpl) Create(ctx context.Context, in schema.SkillCreate) (*model.Skill, error) {
	sk := in.ToModel()
	if err := s.repo.Create(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *skillServiceImpl) Update(ctx context.Context, id string, in schema.SkillUpdate) (*model.Skill, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *skillServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
