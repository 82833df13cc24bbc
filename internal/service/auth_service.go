package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by Login for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthenticated is returned by Validate for an unknown or expired token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Credentials is the single demo identity accepted by Login. The password
// is compared by plain equality: this gate is a placeholder for a real auth
// provider and is deliberately not hardened.
type Credentials struct {
	Username string
	Password string
}

// AuthService exchanges the demo credentials for server-side sessions and
// resolves session tokens on administrative requests.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
	Validate(ctx context.Context, token string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	sessions repository.SessionRepository
	creds    Credentials
	ttl      time.Duration
}

// NewAuthService creates an AuthService with the given session store,
// credential pair and session lifetime.
func NewAuthService(sessions repository.SessionRepository, creds Credentials, ttl time.Duration) AuthService {
	return &authServiceImpl{sessions: sessions, creds: creds, ttl: ttl}
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if username != s.creds.Username || password != s.creds.Password {
		return nil, ErrInvalidCredentials
	}

	// Opportunistic cleanup; there is no background sweeper.
	if n, err := s.sessions.DeleteExpired(ctx); err == nil && n > 0 {
		slog.Debug("expired sessions removed", "count", n)
	}

	now := time.Now().UTC()
	sess := &model.Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	slog.Info("admin session created", "expires_at", sess.ExpiresAt)
	return sess, nil
}

func (s *authServiceImpl) Validate(ctx context.Context, token string) (*model.Session, error) {
	sess, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if sess.Expired(time.Now()) {
		_ = s.sessions.DeleteByToken(ctx, token)
		return nil, ErrUnauthenticated
	}
	return sess, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}
