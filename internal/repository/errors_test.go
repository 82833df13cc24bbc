package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError_NoRows(t *testing.T) {
	if got := mapError(pgx.ErrNoRows); !errors.Is(got, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", got)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolation}
	if got := mapError(pgErr); !errors.Is(got, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", got)
	}

	other := &pgconn.PgError{Code: "23503"}
	if got := mapError(other); errors.Is(got, ErrConflict) {
		t.Error("non-unique constraint codes should not map to ErrConflict")
	}
}

func TestMapError_ConnectError(t *testing.T) {
	connErr := &pgconn.ConnectError{}
	if got := mapError(connErr); !errors.Is(got, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", got)
	}

	wrapped := fmt.Errorf("list projects: %w", connErr)
	if got := mapError(wrapped); !errors.Is(got, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable for wrapped connect error, got %v", got)
	}
}

func TestMapError_Passthrough(t *testing.T) {
	if got := mapError(nil); got != nil {
		t.Errorf("nil should stay nil, got %v", got)
	}

	plain := errors.New("some scan failure")
	if got := mapError(plain); !errors.Is(got, plain) {
		t.Errorf("unrecognized errors should pass through, got %v", got)
	}
}
