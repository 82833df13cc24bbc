package repository

import (
	"context"
	"errors"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const siteContentColumns = `id, hero_title, hero_subtitle, hero_image_url,
	about_bio, about_image_url, location, availability,
	email, phone, linkedin, github, portfolio, twitter, resume_url, updated_at`

// PgSiteContentRepository is the PostgreSQL implementation of SiteContentRepository.
type PgSiteContentRepository struct {
	pool *pgxpool.Pool
}

// NewPgSiteContentRepository creates a PgSiteContentRepository backed by the given pool.
func NewPgSiteContentRepository(pool *pgxpool.Pool) *PgSiteContentRepository {
	return &PgSiteContentRepository{pool: pool}
}

var _ SiteContentRepository = (*PgSiteContentRepository)(nil)

func scanSiteContent(row pgx.Row) (*model.SiteContent, error) {
	var c model.SiteContent
	err := row.Scan(&c.ID, &c.HeroTitle, &c.HeroSubtitle, &c.HeroImageURL,
		&c.AboutBio, &c.AboutImageURL, &c.Location, &c.Availability,
		&c.Email, &c.Phone, &c.LinkedIn, &c.GitHub, &c.Portfolio, &c.Twitter,
		&c.ResumeURL, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgSiteContentRepository) Get(ctx context.Context) (*model.SiteContent, error) {
	c, err := scanSiteContent(r.pool.QueryRow(ctx,
		`SELECT `+siteContentColumns+` FROM site_content WHERE id = $1`,
		model.SiteContentID))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

// Upsert reads the current singleton (or starts from an empty one), merges
// the supplied fields and writes the result back in a single statement.
// Concurrent upserts resolve last-write-wins.
func (r *PgSiteContentRepository) Upsert(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error) {
	current, err := r.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		current = &model.SiteContent{ID: model.SiteContentID}
	} else if err != nil {
		return nil, err
	}

	if in.HeroTitle != nil {
		current.HeroTitle = *in.HeroTitle
	}
	if in.HeroSubtitle != nil {
		current.HeroSubtitle = *in.HeroSubtitle
	}
	if in.HeroImageURL != nil {
		current.HeroImageURL = in.HeroImageURL
	}
	if in.AboutBio != nil {
		current.AboutBio = *in.AboutBio
	}
	if in.AboutImageURL != nil {
		current.AboutImageURL = in.AboutImageURL
	}
	if in.Location != nil {
		current.Location = in.Location
	}
	if in.Availability != nil {
		current.Availability = in.Availability
	}
	if in.Email != nil {
		current.Email = in.Email
	}
	if in.Phone != nil {
		current.Phone = in.Phone
	}
	if in.LinkedIn != nil {
		current.LinkedIn = in.LinkedIn
	}
	if in.GitHub != nil {
		current.GitHub = in.GitHub
	}
	if in.Portfolio != nil {
		current.Portfolio = in.Portfolio
	}
	if in.Twitter != nil {
		current.Twitter = in.Twitter
	}
	if in.ResumeURL != nil {
		current.ResumeURL = in.ResumeURL
	}

	c, err := scanSiteContent(r.pool.QueryRow(ctx,
		`INSERT INTO site_content
		   (id, hero_title, hero_subtitle, hero_image_url, about_bio, about_image_url,
		    location, availability, email, phone, linkedin, github, portfolio, twitter, resume_url, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   hero_title = EXCLUDED.hero_title,
		   hero_subtitle = EXCLUDED.hero_subtitle,
		   hero_image_url = EXCLUDED.hero_image_url,
		   about_bio = EXCLUDED.about_bio,
		   about_image_url = EXCLUDED.about_image_url,
		   location = EXCLUDED.location,
		   availability = EXCLUDED.availability,
		   email = EXCLUDED.email,
		   phone = EXCLUDED.phone,
		   linkedin = EXCLUDED.linkedin,
		   github = EXCLUDED.github,
		   portfolio = EXCLUDED.portfolio,
		   twitter = EXCLUDED.twitter,
		   resume_url = EXCLUDED.resume_url,
		   updated_at = NOW()
		 RETURNING `+siteContentColumns,
		current.ID, current.HeroTitle, current.HeroSubtitle, current.HeroImageURL,
		current.AboutBio, current.AboutImageURL, current.Location, current.Availability,
		current.Email, current.Phone, current.LinkedIn, current.GitHub,
		current.Portfolio, current.Twitter, current.ResumeURL))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}
