package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// ExperienceRepository handles persistence for experience entries.
type ExperienceRepository interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Create(ctx context.Context, e *model.Experience) error
	Update(ctx context.Context, id string, in schema.ExperienceUpdate) (*model.Experience, error)
	Delete(ctx context.Context, id string) error
}
