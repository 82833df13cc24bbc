package schema

// SiteContentUpdate is the partial upsert payload for the singleton site
// configuration. Every field is optional: the first write creates the row
// with unsupplied fields at their defaults, later writes merge in place.
type SiteContentUpdate struct {
	HeroTitle    *string `json:"heroTitle"`
	HeroSubtitle *string `json:"heroSubtitle"`
	HeroImageURL *string `json:"heroImageUrl"`

	AboutBio      *string `json:"aboutBio"`
	AboutImageURL *string `json:"aboutImageUrl"`
	Location      *string `json:"location"`
	Availability  *string `json:"availability"`

	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
	Twitter   *string `json:"twitter"`
	ResumeURL *string `json:"resumeUrl"`
}
