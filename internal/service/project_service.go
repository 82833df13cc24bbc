package service

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	// List returns every project, published or not; visibility filtering
	// is the presentation layer's concern.
	List(ctx context.Context) ([]*model.Project, error)

	// GetBySlug returns one project by its public lookup key.
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)

	// Create persists a validated project with creation defaults applied.
	Create(ctx context.Context, in schema.ProjectCreate) (*model.Project, error)

	// Update applies a partial update and returns the stored result.
	Update(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error)

	// Delete removes a project by id; idempotent.
	Delete(ctx context.Context, id string) error
}
