package model

import "time"

// Experience is a professional work experience entry.
type Experience struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Duration     string    `json:"duration"` // free-text label, e.g. "Mar 2025 – May 2025"
	Location     *string   `json:"location,omitempty"`
	Type         string    `json:"type"` // full-time | internship | contract | research | volunteer
	Achievements []string  `json:"achievements"`
	CompanyLogo  *string   `json:"companyLogo,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
