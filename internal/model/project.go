package model

import "time"

// Metric is a single case-study figure rendered on the project page as-is;
// values are opaque display strings, never parsed as numbers.
type Metric struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// Project is a portfolio project with optional case-study content.
// Slug is the public lookup key; ID is the internal identity.
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Category         string   `json:"category"` // e.g. "Product Management", "Engineering"
	ShortDescription string   `json:"shortDescription"`
	ThumbnailURL     *string  `json:"thumbnailUrl,omitempty"`
	Technologies     []string `json:"technologies"`
	Timeline         *string  `json:"timeline,omitempty"` // e.g. "Apr 2024 – May 2024"
	TeamSize         *string  `json:"teamSize,omitempty"`
	Role             *string  `json:"role,omitempty"`

	// Case study content
	CaseStudyHeroImage *string  `json:"caseStudyHeroImage,omitempty"`
	ProblemStatement   *string  `json:"problemStatement,omitempty"`
	Solution           *string  `json:"solution,omitempty"`
	Process            *string  `json:"process,omitempty"` // rich text / markdown
	Results            *string  `json:"results,omitempty"`
	Metrics            []Metric `json:"metrics"`
	Images             []string `json:"images"`

	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"displayOrder"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
