package repository

import (
	"context"

	"github.com/foliosite/backend/internal/model"
)

// ContactRepository handles persistence for contact form submissions.
type ContactRepository interface {
	// Create persists a new submission with Read=false and populates the
	// ID and creation timestamp.
	Create(ctx context.Context, c *model.ContactSubmission) error
	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
	// MarkRead flips Read to true; idempotent on repeat, ErrNotFound for
	// an unknown id.
	MarkRead(ctx context.Context, id string) error
	// Delete removes the row; deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id string) error
}
