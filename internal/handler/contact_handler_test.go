package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// mockContactService is a func-field mock of ContactService.
type mockContactService struct {
	submitFunc   func(ctx context.Context, in schema.ContactCreate) (*model.ContactSubmission, error)
	listFunc     func(ctx context.Context) ([]*model.ContactSubmission, error)
	markReadFunc func(ctx context.Context, id string) error
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockContactService) Submit(ctx context.Context, in schema.ContactCreate) (*model.ContactSubmission, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return in.ToModel(), nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestContactHandler_Submit_Success(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in schema.ContactCreate) (*model.ContactSubmission, error) {
			s := in.ToModel()
			s.ID = "c1"
			return s, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Ada","email":"ada@example.com","message":"Hello"}`
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got model.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "c1" || got.Read {
		t.Errorf("expected unread stored submission, got %+v", got)
	}
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	body := `{"name":"Ada","email":"not-an-email","message":"Hello"}`
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Invalid input" || len(resp.Errors) == 0 {
		t.Errorf("expected field-level validation errors, got %+v", resp)
	}
}

func TestContactHandler_AdminList_EmptyIsJSONArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest("GET", "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got []*model.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil {
		t.Error("empty inbox should encode as [], not null")
	}
}

func TestContactHandler_MarkRead_NotFound(t *testing.T) {
	mock := &mockContactService{
		markReadFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewContactHandler(mock)

	mux := http.NewServeMux()
	mux.Handle("PUT /api/admin/contacts/{id}/read", http.HandlerFunc(h.MarkRead))

	req := httptest.NewRequest("PUT", "/api/admin/contacts/nope/read", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestContactHandler_MarkRead_Success(t *testing.T) {
	marked := ""
	mock := &mockContactService{
		markReadFunc: func(ctx context.Context, id string) error {
			marked = id
			return nil
		},
	}
	h := NewContactHandler(mock)

	mux := http.NewServeMux()
	mux.Handle("PUT /api/admin/contacts/{id}/read", http.HandlerFunc(h.MarkRead))

	req := httptest.NewRequest("PUT", "/api/admin/contacts/c1/read", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if marked != "c1" {
		t.Errorf("expected mark-read of c1, got %q", marked)
	}
}
