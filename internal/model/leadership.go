package model

import "time"

// Leadership is a leadership or initiative entry.
type Leadership struct {
	ID            string    `json:"id"`
	Organization  string    `json:"organization"`
	Role          string    `json:"role"`
	Duration      string    `json:"duration"` // free-text label
	Description   *string   `json:"description,omitempty"`
	Contributions []string  `json:"contributions"`
	LogoURL       *string   `json:"logoUrl,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
