package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// ProjectRepository handles persistence for portfolio projects.
type ProjectRepository interface {
	// List returns all projects ordered by display order (descending),
	// newest-first among equal display orders.
	List(ctx context.Context) ([]*model.Project, error)
	// GetBySlug returns the project with the given slug, or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	// Create persists a new project and populates ID and timestamps.
	Create(ctx context.Context, p *model.Project) error
	// Update merges the non-nil fields onto the stored row, refreshes the
	// update timestamp and returns the result, or ErrNotFound.
	Update(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error)
	// Delete removes the row. Deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id string) error
}
