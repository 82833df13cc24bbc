package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
)

// mockSiteContentService is a func-field mock of SiteContentService.
type mockSiteContentService struct {
	getFunc    func(ctx context.Context) (*model.SiteContent, error)
	upsertFunc func(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error)
}

func (m *mockSiteContentService) Get(ctx context.Context) (*model.SiteContent, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentService) Upsert(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, in)
	}
	return &model.SiteContent{ID: model.SiteContentID}, nil
}

func TestSiteContentHandler_Get_NeverConfigured(t *testing.T) {
	h := NewSiteContentHandler(&mockSiteContentService{})

	req := httptest.NewRequest("GET", "/api/site-content", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "{}" {
		t.Errorf("unconfigured site should encode as {}, got %q", got)
	}
}

func TestSiteContentHandler_Get_Configured(t *testing.T) {
	title := "Alex Morgan"
	mock := &mockSiteContentService{
		getFunc: func(ctx context.Context) (*model.SiteContent, error) {
			return &model.SiteContent{ID: model.SiteContentID, HeroTitle: title}, nil
		},
	}
	h := NewSiteContentHandler(mock)

	req := httptest.NewRequest("GET", "/api/site-content", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got model.SiteContent
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.HeroTitle != title {
		t.Errorf("expected heroTitle %q, got %q", title, got.HeroTitle)
	}
}

func TestSiteContentHandler_Upsert_PartialPayload(t *testing.T) {
	var received schema.SiteContentUpdate
	mock := &mockSiteContentService{
		upsertFunc: func(ctx context.Context, in schema.SiteContentUpdate) (*model.SiteContent, error) {
			received = in
			email := *in.Email
			return &model.SiteContent{ID: model.SiteContentID, Email: &email}, nil
		},
	}
	h := NewSiteContentHandler(mock)

	req := httptest.NewRequest("PUT", "/api/admin/site-content", bytes.NewBufferString(`{"email":"hello@example.com"}`))
	rec := httptest.NewRecorder()
	h.Upsert(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if received.Email == nil || *received.Email != "hello@example.com" {
		t.Errorf("expected email to pass through, got %v", received.Email)
	}
	if received.HeroTitle != nil {
		t.Error("unsupplied fields should stay nil")
	}
}
