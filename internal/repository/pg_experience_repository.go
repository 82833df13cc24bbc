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

const experienceColumns = `id, company, role, duration, location, type, achievements,
	company_logo, display_order, published, created_at, updated_at`

// PgExperienceRepository is the PostgreSQL implementation of ExperienceRepository.
type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

// NewPgExperienceRepository creates a PgExperienceRepository backed by the given pool.
func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

var _ ExperienceRepository = (*PgExperienceRepository)(nil)

func scanExperience(row pgx.Row) (*model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Duration, &e.Location, &e.Type,
		&e.Achievements, &e.CompanyLogo, &e.DisplayOrder, &e.Published,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	return &e, nil
}

func (r *PgExperienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences
		 ORDER BY display_order DESC, created_at DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var experiences []*model.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, mapError(err)
		}
		experiences = append(experiences, e)
	}
	return experiences, mapError(rows.Err())
}

func (r *PgExperienceRepository) Create(ctx context.Context, e *model.Experience) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO experiences
		   (company, role, duration, location, type, achievements, company_logo, display_order, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		e.Company, e.Role, e.Duration, e.Location, e.Type, e.Achievements,
		e.CompanyLogo, e.DisplayOrder, e.Published,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapError(err)
}

func (r *PgExperienceRepository) Update(ctx context.Context, id string, in schema.ExperienceUpdate) (*model.Experience, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Company != nil {
		set("company", *in.Company)
	}
	if in.Role != nil {
		set("role", *in.Role)
	}
	if in.Duration != nil {
		set("duration", *in.Duration)
	}
	if in.Location != nil {
		set("location", *in.Location)
	}
	if in.Type != nil {
		set("type", *in.Type)
	}
	if in.Achievements != nil {
		set("achievements", in.Achievements)
	}
	if in.CompanyLogo != nil {
		set("company_logo", *in.CompanyLogo)
	}
	if in.DisplayOrder != nil {
		set("display_order", *in.DisplayOrder)
	}
	if in.Published != nil {
		set("published", *in.Published)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := `UPDATE experiences SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + experienceColumns

	e, err := scanExperience(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *PgExperienceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	return mapError(err)
}
