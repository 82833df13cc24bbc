package schema

import "github.com/foliosite/backend/internal/model"

// LeadershipCreate is the payload accepted when creating a leadership entry.
type LeadershipCreate struct {
	Organization  string   `json:"organization" validate:"required"`
	Role          string   `json:"role" validate:"required"`
	Duration      string   `json:"duration" validate:"required"`
	Description   *string  `json:"description"`
	Contributions []string `json:"contributions"`
	LogoURL       *string  `json:"logoUrl"`
	DisplayOrder  *int     `json:"displayOrder"`
	Published     *bool    `json:"published"`
}

// ToModel applies creation defaults and returns the entity to persist.
func (in LeadershipCreate) ToModel() *model.Leadership {
	return &model.Leadership{
		Organization:  in.Organization,
		Role:          in.Role,
		Duration:      in.Duration,
		Description:   in.Description,
		Contributions: orEmpty(in.Contributions),
		LogoURL:       in.LogoURL,
		DisplayOrder:  intOr(in.DisplayOrder, 0),
		Published:     boolOr(in.Published, true),
	}
}

// LeadershipUpdate is a partial update: only non-nil fields change.
type LeadershipUpdate struct {
	Organization  *string  `json:"organization"`
	Role          *string  `json:"role"`
	Duration      *string  `json:"duration"`
	Description   *string  `json:"description"`
	Contributions []string `json:"contributions"`
	LogoURL       *string  `json:"logoUrl"`
	DisplayOrder  *int     `json:"displayOrder"`
	Published     *bool    `json:"published"`
}
