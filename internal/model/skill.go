package model

import "time"

// Skill is a single skill grouped by its free-text category at read time.
// Skills have no edit history, so there is no UpdatedAt.
type Skill struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Proficiency  int       `json:"proficiency"` // 0-100
	IconName     *string   `json:"iconName,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
