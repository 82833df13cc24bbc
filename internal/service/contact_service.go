package service

import (
	"context"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission from the public form. ID, Read and
	// CreatedAt are populated by the implementation.
	Submit(ctx context.Context, in schema.ContactCreate) (*model.ContactSubmission, error)

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// MarkRead flips the read flag; idempotent on repeat.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a submission; idempotent.
	Delete(ctx context.Context, id string) error
}
