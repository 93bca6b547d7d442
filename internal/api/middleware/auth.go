// Package middleware contains the mux middleware shared by the HTTP server.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/authtoken"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
	rawTokenKey contextKey = "rawToken"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth validates the Bearer token on every request and stores the caller's
// identity in the request context. The raw token is kept so downstream
// calls to the salon API can forward it unchanged.
func Auth(tokens *authtoken.Service, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "missing authorization header")
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				handlers.RespondUnauthorized(w, "invalid authorization header")
				return
			}

			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				logger.Warn("%s %s - Token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userRoleKey, claims.Role)
			ctx = context.WithValue(ctx, rawTokenKey, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// It must run after Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := Role(r.Context())
			if !ok || role != string(authtoken.RoleAdmin) {
				logger.Warn("%s %s - Admin access denied: role=%s", r.Method, r.URL.Path, role)
				handlers.RespondForbidden(w, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Role returns the authenticated user's role from the request context.
func Role(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

// RawToken returns the Bearer token the caller presented.
func RawToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(rawTokenKey).(string)
	return token, ok
}
