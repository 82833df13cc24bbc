package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// mockProjectRepository is a func-field mock of ProjectRepository.
type mockProjectRepository struct {
	listFunc      func(ctx context.Context) ([]*model.Project, error)
	getBySlugFunc func(ctx context.Context, slug string) (*model.Project, error)
	createFunc    func(ctx context.Context, p *model.Project) error
	updateFunc    func(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error)
	deleteFunc    func(ctx context.Context, id string) error
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, id string, in schema.ProjectUpdate) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestProjectService_Create_AppliesDefaults(t *testing.T) {
	var persisted *model.Project
	mock := &mockProjectRepository{
		createFunc: func(ctx context.Context, p *model.Project) error {
			p.ID = "p1"
			persisted = p
			return nil
		},
	}
	svc := NewProjectService(mock)

	got, err := svc.Create(context.Background(), schema.ProjectCreate{
		Title:            "Checkout Redesign",
		Slug:             "checkout-redesign",
		Category:         "Product Management",
		ShortDescription: "d",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if persisted == nil {
		t.Fatal("repository was not called")
	}
	if !got.Published {
		t.Error("published should default to true")
	}
	if got.Featured {
		t.Error("featured should default to false")
	}
	if got.Technologies == nil || got.Images == nil || got.Metrics == nil {
		t.Error("array fields should be empty slices, not nil")
	}
	if got.ID != "p1" {
		t.Errorf("expected repository-assigned id, got %q", got.ID)
	}
}

func TestProjectService_Create_RepositoryError(t *testing.T) {
	mock := &mockProjectRepository{
		createFunc: func(ctx context.Context, p *model.Project) error {
			return repository.ErrConflict
		},
	}
	svc := NewProjectService(mock)

	_, err := svc.Create(context.Background(), schema.ProjectCreate{
		Title:            "T",
		Slug:             "dup",
		Category:         "Engineering",
		ShortDescription: "d",
	})
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestProjectService_GetBySlug_NotFound(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{})

	_, err := svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
