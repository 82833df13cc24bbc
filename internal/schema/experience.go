package schema

import "github.com/foliosite/backend/internal/model"

// ExperienceCreate is the payload accepted when creating an experience entry.
type ExperienceCreate struct {
	Company      string   `json:"company" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Duration     string   `json:"duration" validate:"required"`
	Location     *string  `json:"location"`
	Type         string   `json:"type" validate:"required,oneof=full-time internship contract research volunteer"`
	Achievements []string `json:"achievements"`
	CompanyLogo  *string  `json:"companyLogo"`
	DisplayOrder *int     `json:"displayOrder"`
	Published    *bool    `json:"published"`
}

// ToModel applies creation defaults and returns the entity to persist.
func (in ExperienceCreate) ToModel() *model.Experience {
	return &model.Experience{
		Company:      in.Company,
		Role:         in.Role,
		Duration:     in.Duration,
		Location:     in.Location,
		Type:         in.Type,
		Achievements: orEmpty(in.Achievements),
		CompanyLogo:  in.CompanyLogo,
		DisplayOrder: intOr(in.DisplayOrder, 0),
		Published:    boolOr(in.Published, true),
	}
}

// ExperienceUpdate is a partial update: only non-nil fields change.
type ExperienceUpdate struct {
	Company      *string  `json:"company"`
	Role         *string  `json:"role"`
	Duration     *string  `json:"duration"`
	Location     *string  `json:"location"`
	Type         *string  `json:"type" validate:"omitempty,oneof=full-time internship contract research volunteer"`
	Achievements []string `json:"achievements"`
	CompanyLogo  *string  `json:"companyLogo"`
	DisplayOrder *int     `json:"displayOrder"`
	Published    *bool    `json:"published"`
}
