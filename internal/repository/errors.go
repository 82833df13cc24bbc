package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint,
// e.g. creating a project with a duplicate slug.
var ErrConflict = errors.New("conflict")

// ErrUnavailable is returned when the database cannot be reached.
var ErrUnavailable = errors.New("storage unavailable")

const uniqueViolation = "23505"

// mapError translates pgx-level failures into the repository error taxonomy
// so callers can branch with errors.Is instead of inspecting driver types.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrUnavailable
	}
	return err
}
