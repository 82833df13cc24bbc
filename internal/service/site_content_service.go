package service

import (
	"context"
	"errors"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// SiteContentService defines the business logic for the singleton site
// configuration.
type SiteContentService interface {
	// Get returns the singleton, or (nil, nil) when it was never written.
	// An absent singleton is not an error.
	Get(ctx context.Context) (*model.SiteContent, error)

	// Upsert creates the singleton on first call and merges supplied
	// fields in place thereafter.
	Upsert(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error)
}

type siteContentServiceImpl struct {
	repo repository.SiteContentRepository
}

// NewSiteContentService creates a SiteContentService backed by the given repository.
func NewSiteContentService(repo repository.SiteContentRepository) SiteContentService {
	return &siteContentServiceImpl{repo: repo}
}

func (s *siteContentServiceImpl) Get(ctx context.Context) (*model.SiteContent, error) {
	c, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *siteContentServiceImpl) Upsert(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error) {
	return s.repo.Upsert(ctx, in)
}
