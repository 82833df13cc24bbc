package model

import "time"

// SiteContentID is the sentinel primary key of the singleton row.
const SiteContentID = "singleton"

// SiteContent is the single-row site configuration: hero section, about
// section and contact details. At most one record ever exists.
type SiteContent struct {
	ID string `json:"id"`

	// Hero section
	HeroTitle    string  `json:"heroTitle"`
	HeroSubtitle string  `json:"heroSubtitle"`
	HeroImageURL *string `json:"heroImageUrl,omitempty"`

	// About section
	AboutBio      string  `json:"aboutBio"`
	AboutImageURL *string `json:"aboutImageUrl,omitempty"`
	Location      *string `json:"location,omitempty"`
	Availability  *string `json:"availability,omitempty"` // e.g. "Open to opportunities"

	// Contact info
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	ResumeURL *string `json:"resumeUrl,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}
