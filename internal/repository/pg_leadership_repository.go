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

const leadershipColumns = `id, organization, role, duration, description, contributions,
	logo_url, display_order, published, created_at, updated_at`

// PgLeadershipRepository is the PostgreSQL implementation of LeadershipRepository.
type PgLeadershipRepository struct {
	pool *pgxpool.Pool
}

// NewPgLeadershipRepository creates a PgLeadershipRepository backed by the given pool.
func NewPgLeadershipRepository(pool *pgxpool.Pool) *PgLeadershipRepository {
	return &PgLeadershipRepository{pool: pool}
}

var _ LeadershipRepository = (*PgLeadershipRepository)(nil)

func scanLeadership(row pgx.Row) (*model.Leadership, error) {
	var l model.Leadership
	err := row.Scan(&l.ID, &l.Organization, &l.Role, &l.Duration, &l.Description,
		&l.Contributions, &l.LogoURL, &l.DisplayOrder, &l.Published,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if l.Contributions == nil {
		l.Contributions = []string{}
	}
	return &l, nil
}

func (r *PgLeadershipRepository) List(ctx context.Context) ([]*model.Leadership, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+leadershipColumns+` FROM leadership
		 ORDER BY display_order DESC, created_at DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entries []*model.Leadership
	for rows.Next() {
		l, err := scanLeadership(rows)
		if err != nil {
			return nil, mapError(err)
		}
		entries = append(entries, l)
	}
	return entries, mapError(rows.Err())
}

func (r *PgLeadershipRepository) Create(ctx context.Context, l *model.Leadership) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leadership
		   (organization, role, duration, description, contributions, logo_url, display_order, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		l.Organization, l.Role, l.Duration, l.Description, l.Contributions,
		l.LogoURL, l.DisplayOrder, l.Published,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return mapError(err)
}

func (r *PgLeadershipRepository) Update(ctx context.Context, id string, in schema.LeadershipUpdate) (*model.Leadership, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Organization != nil {
		set("organization", *in.Organization)
	}
	if in.Role != nil {
		set("role", *in.Role)
	}
	if in.Duration != nil {
		set("duration", *in.Duration)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Contributions != nil {
		set("contributions", in.Contributions)
	}
	if in.LogoURL != nil {
		set("logo_url", *in.LogoURL)
	}
	if in.DisplayOrder != nil {
		set("display_order", *in.DisplayOrder)
	}
	if in.Published != nil {
		set("published", *in.Published)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := `UPDATE leadership SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + leadershipColumns

	l, err := scanLeadership(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return l, nil
}

func (r *PgLeadershipRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM leadership WHERE id = $1`, id)
	return mapError(err)
}
