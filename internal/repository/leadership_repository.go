package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// LeadershipRepository handles persistence for leadership entries.
type LeadershipRepository interface {
	List(ctx context.Context) ([]*model.Leadership, error)
	Create(ctx context.Context, l *model.Leadership) error
	Update(ctx context.Context, id string, in schema.LeadershipUpdate) (*model.Leadership, error)
	Delete(ctx context.Context, id string) error
}
