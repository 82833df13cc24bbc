package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// SiteContentRepository handles persistence for the singleton site
// configuration row.
type SiteContentRepository interface {
	// Get returns the singleton, or ErrNotFound when it was never written.
	Get(ctx context.Context) (*model.SiteContent, error)
	// Upsert creates the singleton on first call and merges the supplied
	// fields onto it thereafter.
	Upsert(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error)
}
