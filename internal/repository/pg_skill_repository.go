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

const skillColumns = `id, name, category, proficiency, icon_name, display_order, created_at`

// PgSkillRepository is the PostgreSQL implementation of SkillRepository.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository creates a PgSkillRepository backed by the given pool.
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

func scanSkill(row pgx.Row) (*model.Skill, error) {
	var s model.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.IconName,
		&s.DisplayOrder, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills
		 ORDER BY category ASC, display_order DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, mapError(err)
		}
		skills = append(skills, s)
	}
	return skills, mapError(rows.Err())
}

func (r *PgSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency, icon_name, display_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.Name, s.Category, s.Proficiency, s.IconName, s.DisplayOrder,
	).Scan(&s.ID, &s.CreatedAt)
	return mapError(err)
}

// Update merges supplied fields. Skills carry no update timestamp, so an
// empty partial is a true no-op apart from the returned current row.
func (r *PgSkillRepository) Update(ctx context.Context, id string, in schema.SkillUpdate) (*model.Skill, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Category != nil {
		set("category", *in.Category)
	}
	if in.Proficiency != nil {
		set("proficiency", *in.Proficiency)
	}
	if in.IconName != nil {
		set("icon_name", *in.IconName)
	}
	if in.DisplayOrder != nil {
		set("display_order", *in.DisplayOrder)
	}

	if len(sets) == 0 {
		s, err := scanSkill(r.pool.QueryRow(ctx,
			`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
		if err != nil {
			return nil, mapError(err)
		}
		return s, nil
	}

	args = append(args, id)
	query := `UPDATE skills SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + skillColumns

	s, err := scanSkill(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *PgSkillRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return mapError(err)
}
