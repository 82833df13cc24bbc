package schema

import "github.com/foliosite/backend/internal/model"

// defaultProficiency is used when a skill is created without one.
const defaultProficiency = 80

// SkillCreate is the payload accepted when creating a skill.
type SkillCreate struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Proficiency  *int    `json:"proficiency" validate:"omitempty,min=0,max=100"`
	IconName     *string `json:"iconName"`
	DisplayOrder *int    `json:"displayOrder"`
}

// ToModel applies creation defaults and returns the entity to persist.
func (in SkillCreate) ToModel() *model.Skill {
	return &model.Skill{
		Name:         in.Name,
		Category:     in.Category,
		Proficiency:  intOr(in.Proficiency, defaultProficiency),
		IconName:     in.IconName,
		DisplayOrder: intOr(in.DisplayOrder, 0),
	}
}

// SkillUpdate is a partial update: only non-nil fields change.
type SkillUpdate struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Proficiency  *int    `json:"proficiency" validate:"omitempty,min=0,max=100"`
	IconName     *string `json:"iconName"`
	DisplayOrder *int    `json:"displayOrder"`
}
