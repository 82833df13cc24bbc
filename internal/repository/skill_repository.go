package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// SkillRepository handles persistence for skills.
type SkillRepository interface {
	// List returns all skills ordered by category (ascending) then
	// display order (descending), ready to be grouped at read time.
	List(ctx context.Context) ([]*model.Skill, error)
	Create(ctx context.Context, s *model.Skill) error
	Update(ctx context.Context, id string, in schema.SkillUpdate) (*model.Skill, error)
	Delete(ctx context.Context, id string) error
}
