package schema

import "github.com/foliosite/backend/internal/model"

// ProjectCreate is the payload accepted when creating a project.
// Array-valued fields must already be in split form; a delimited single
// string is not accepted at the API boundary.
type ProjectCreate struct {
	Title            string   `json:"title" validate:"required"`
	Slug             string   `json:"slug" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	ThumbnailURL     *string  `json:"thumbnailUrl"`
	Technologies     []string `json:"technologies"`
	Timeline         *string  `json:"timeline"`
	TeamSize         *string  `json:"teamSize"`
	Role             *string  `json:"role"`

	CaseStudyHeroImage *string        `json:"caseStudyHeroImage"`
	ProblemStatement   *string        `json:"problemStatement"`
	Solution           *string        `json:"solution"`
	Process            *string        `json:"process"`
	Results            *string        `json:"results"`
	Metrics            []model.Metric `json:"metrics" validate:"omitempty,dive"`
	Images             []string       `json:"images"`

	Featured     *bool `json:"featured"`
	DisplayOrder *int  `json:"displayOrder"`
	Published    *bool `json:"published"`
}

// ToModel applies creation defaults and returns the entity to persist.
// Unspecified published defaults to true, featured to false, and array
// fields to empty sequences.
func (in ProjectCreate) ToModel() *model.Project {
	metrics := in.Metrics
	if metrics == nil {
		metrics = []model.Metric{}
	}
	return &model.Project{
		Title:            in.Title,
		Slug:             in.Slug,
		Category:         in.Category,
		ShortDescription: in.ShortDescription,
		ThumbnailURL:     in.ThumbnailURL,
		Technologies:     orEmpty(in.Technologies),
		Timeline:         in.Timeline,
		TeamSize:         in.TeamSize,
		Role:             in.Role,

		CaseStudyHeroImage: in.CaseStudyHeroImage,
		ProblemStatement:   in.ProblemStatement,
		Solution:           in.Solution,
		Process:            in.Process,
		Results:            in.Results,
		Metrics:            metrics,
		Images:             orEmpty(in.Images),

		Featured:     boolOr(in.Featured, false),
		DisplayOrder: intOr(in.DisplayOrder, 0),
		Published:    boolOr(in.Published, true),
	}
}

// ProjectUpdate is a partial update: only non-nil fields change. A nil
// slice means "not supplied"; an empty slice clears the stored sequence.
type ProjectUpdate struct {
	Title            *string  `json:"title"`
	Slug             *string  `json:"slug"`
	Category         *string  `json:"category"`
	ShortDescription *string  `json:"shortDescription"`
	ThumbnailURL     *string  `json:"thumbnailUrl"`
	Technologies     []string `json:"technologies"`
	Timeline         *string  `json:"timeline"`
	TeamSize         *string  `json:"teamSize"`
	Role             *string  `json:"role"`

	CaseStudyHeroImage *string        `json:"caseStudyHeroImage"`
	ProblemStatement   *string        `json:"problemStatement"`
	Solution           *string        `json:"solution"`
	Process            *string        `json:"process"`
	Results            *string        `json:"results"`
	Metrics            []model.Metric `json:"metrics" validate:"omitempty,dive"`
	Images             []string       `json:"images"`

	Featured     *bool `json:"featured"`
	DisplayOrder *int  `json:"displayOrder"`
	Published    *bool `json:"published"`
}
