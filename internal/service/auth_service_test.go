package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
)

// mockSessionRepository is a func-field mock of SessionRepository.
type mockSessionRepository struct {
	createFunc        func(ctx context.Context, s *model.Session) error
	findByTokenFunc   func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFunc func(ctx context.Context, token string) error
	deleteExpiredFunc func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return 0, nil
}

var testCreds = Credentials{Username: "admin", Password: "secret"}

func TestAuthService_Login_Success(t *testing.T) {
	var stored *model.Session
	mock := &mockSessionRepository{
		createFunc: func(ctx context.Context, s *model.Session) error {
			stored = s
			return nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	sess, err := svc.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a non-empty token")
	}
	if stored == nil || stored.Token != sess.Token {
		t.Error("session was not persisted")
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != time.Hour {
		t.Errorf("expected 1h lifetime, got %v", got)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	created := false
	mock := &mockSessionRepository{
		createFunc: func(ctx context.Context, s *model.Session) error {
			created = true
			return nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if created {
		t.Error("no session should be created on failed login")
	}
}

func TestAuthService_Login_SweepsExpired(t *testing.T) {
	swept := false
	mock := &mockSessionRepository{
		deleteExpiredFunc: func(ctx context.Context) (int64, error) {
			swept = true
			return 2, nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	if _, err := svc.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !swept {
		t.Error("login should sweep expired sessions")
	}
}

func TestAuthService_Validate_UnknownToken(t *testing.T) {
	svc := NewAuthService(&mockSessionRepository{}, testCreds, time.Hour)

	_, err := svc.Validate(context.Background(), "nope")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_Validate_ExpiredTokenDeleted(t *testing.T) {
	deleted := ""
	mock := &mockSessionRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				Username:  "admin",
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
		deleteByTokenFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	_, err := svc.Validate(context.Background(), "stale")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if deleted != "stale" {
		t.Error("expired session should be deleted on validation")
	}
}

func TestAuthService_Validate_Success(t *testing.T) {
	mock := &mockSessionRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				Username:  "admin",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	sess, err := svc.Validate(context.Background(), "live")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if sess.Username != "admin" {
		t.Errorf("expected username admin, got %q", sess.Username)
	}
}

func TestAuthService_Logout(t *testing.T) {
	deleted := ""
	mock := &mockSessionRepository{
		deleteByTokenFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewAuthService(mock, testCreds, time.Hour)

	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if deleted != "tok" {
		t.Error("logout should delete the session row")
	}
}
