// Package auth carries the session-cookie gate for administrative routes.
// It is deliberately decoupled from the service layer: the concrete check
// (demo credential store, OAuth, JWT) plugs in through ResolveFunc.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// CookieName is the admin session cookie.
const CookieName = "portfolio_session"

// ErrUnauthenticated marks a token that is unknown or expired. A ResolveFunc
// returning any other error signals an internal failure, not a bad session.
var ErrUnauthenticated = errors.New("unauthenticated")

type contextKey string

const usernameKey contextKey = "username"

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey).(string)
	return v, ok
}

// WithUsername stores the authenticated username on the context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// ResolveFunc resolves an opaque session token to the authenticated
// username. It returns ErrUnauthenticated when the token is unknown or
// expired, and any other error when resolution itself failed.
type ResolveFunc func(ctx context.Context, token string) (string, error)

// RequireSession rejects any request without a valid session cookie with
// 401 before it reaches the handler, and stores the username on the
// request context otherwise. 401 means unauthenticated; there is only one
// identity, so no forbidden tier exists.
func RequireSession(resolve ResolveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			username, err := resolve(r.Context(), cookie.Value)
			if errors.Is(err, ErrUnauthenticated) {
				writeError(w, http.StatusUnauthorized, "invalid session")
				return
			}
			if err != nil {
				slog.Error("session resolution failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
