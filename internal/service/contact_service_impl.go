package service

import (
	"context"
	"log/slog"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in schema.ContactCreate) (*model.ContactSubmission, error) {
	c := in.ToModel()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	slog.Info("contact submission received", "id", c.ID)
	return c, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
