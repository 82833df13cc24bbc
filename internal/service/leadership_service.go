package service

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// LeadershipService defines the business logic for leadership entries.
type LeadershipService interface {
	List(ctx context.Context) ([]*model.Leadership, error)
	Create(ctx context.Context, in schema.LeadershipCreate) (*model.Leadership, error)
	Update(ctx context.Context, id string, in schema.LeadershipUpdate) (*model.Leadership, error)
	Delete(ctx context.Context, id string) error
}

type leadershipServiceImpl struct {
	repo repository.LeadershipRepository
}

// NewLeadershipService creates a LeadershipService backed by the given repository.
func NewLeadershipService(repo repository.LeadershipRepository) LeadershipService {
	return &leadershipServiceImpl{repo: repo}
}

func (s *leadershipServiceImpl) List(ctx context.Context) ([]*model.Leadership, error) {
	return s.repo.List(ctx)
}

func (s *leadershipServiceImpl) Create(ctx context.Context, in schema.LeadershipCreate) (*model.Leadership, error) {
	l := in.ToModel()
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *leadershipServiceImpl) Update(ctx context.Context, id string, in schema.LeadershipUpdate) (*model.Leadership, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *leadershipServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
