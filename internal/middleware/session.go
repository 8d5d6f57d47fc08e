// Package middleware provides HTTP middlewares for session resolution,
// the admin gate, and request logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/prokashpul/techpulse/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// UserResolver resolves the active session to a user record.
type UserResolver interface {
	// CurrentUser returns the logged-in user, or nil when anonymous.
	CurrentUser(ctx context.Context) (*models.User, error)
}

// WithSession resolves the persisted session once per request and
// stores the resulting user (possibly nil) in the request context.
// Storage errors fail the request; an anonymous session does not.
func WithSession(auth UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.CurrentUser(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose session does not belong to an
// administrator. The gate is advisory at the application boundary;
// there is no further server behind it to re-check.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if user.Role != models.RoleAdmin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext extracts the resolved session user from the request
// context. Returns nil when anonymous or when WithSession did not run.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
