package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, title, slug, category, short_description, thumbnail_url,
	technologies, timeline, team_size, role, case_study_hero_image,
	problem_statement, solution, process, results, metrics, images,
	featured, display_order, published, created_at, updated_at`

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Category, &p.ShortDescription,
		&p.ThumbnailURL, &p.Technologies, &p.Timeline, &p.TeamSize, &p.Role,
		&p.CaseStudyHeroImage, &p.ProblemStatement, &p.Solution, &p.Process,
		&p.Results, &p.Metrics, &p.Images, &p.Featured, &p.DisplayOrder,
		&p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Keep sequences non-nil so they serialize as [] rather than null.
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Metrics == nil {
		p.Metrics = []model.Metric{}
	}
	return &p, nil
}

// List returns all projects, display_order descending, newest first on ties.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects
		 ORDER BY display_order DESC, created_at DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, mapError(err)
		}
		projects = append(projects, p)
	}
	return projects, mapError(rows.Err())
}

// GetBySlug returns the project with the given slug.
func (r *PgProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// Create inserts a new projects row and populates p.ID and timestamps from
// the RETURNING clause. A duplicate slug surfaces as ErrConflict.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects
		   (title, slug, category, short_description, thumbnail_url, technologies,
		    timeline, team_size, role, case_study_hero_image, problem_statement,
		    solution, process, results, metrics, images, featured, display_order, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Slug, p.Category, p.ShortDescription, p.ThumbnailURL, p.Technologies,
		p.Timeline, p.TeamSize, p.Role, p.CaseStudyHeroImage, p.ProblemStatement,
		p.Solution, p.Process, p.Results, p.Metrics, p.Images, p.Featured, p.DisplayOrder, p.Published,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

// Update builds a SET list from the supplied fields only. The update
// timestamp is always refreshed, even for an empty partial.
func (r *PgProjectRepository) Update(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Title != nil {
		set("title", *in.Title)
	}
	if in.Slug != nil {
		set("slug", *in.Slug)
	}
	if in.Category != nil {
		set("category", *in.Category)
	}
	if in.ShortDescription != nil {
		set("short_description", *in.ShortDescription)
	}
	if in.ThumbnailURL != nil {
		set("thumbnail_url", *in.ThumbnailURL)
	}
	if in.Technologies != nil {
		set("technologies", in.Technologies)
	}
	if in.Timeline != nil {
		set("timeline", *in.Timeline)
	}
	if in.TeamSize != nil {
		set("team_size", *in.TeamSize)
	}
	if in.Role != nil {
		set("role", *in.Role)
	}
	if in.CaseStudyHeroImage != nil {
		set("case_study_hero_image", *in.CaseStudyHeroImage)
	}
	if in.ProblemStatement != nil {
		set("problem_statement", *in.ProblemStatement)
	}
	if in.Solution != nil {
		set("solution", *in.Solution)
	}
	if in.Process != nil {
		set("process", *in.Process)
	}
	if in.Results != nil {
		set("results", *in.Results)
	}
	if in.Metrics != nil {
		set("metrics", in.Metrics)
	}
	if in.Images != nil {
		set("images", in.Images)
	}
	if in.Featured != nil {
		set("featured", *in.Featured)
	}
	if in.DisplayOrder != nil {
		set("display_order", *in.DisplayOrder)
	}
	if in.Published != nil {
		set("published", *in.Published)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := `UPDATE projects SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + projectColumns

	p, err := scanProject(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// Delete removes the row; deleting a nonexistent id is a no-op.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return mapError(err)
}
