// Package middlewarectx contains the HTTP middleware of the portal:
// session token verification, the admin gate, rate limiting and request
// metrics.
//
// JWTMiddleware checks the Authorization header for a valid portal token
// and, on success, places the user id, email and role into the request
// context for the handlers.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	jwtlib "github.com/magabrotheeeer/billing-portal/internal/lib/jwt"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
)

// Key is the type for request context keys.
type Key string

const (
	// UserID is the context key for the backend user id.
	UserID Key = "user_id"
	// Email is the context key for the login email.
	Email Key = "email"
	// Role is the context key for the backend-assigned role.
	Role Key = "role"
)

// TokenParser validates a portal session token.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwtlib.CustomClaims, error)
}

// JWTMiddleware returns middleware checking the bearer token in the
// Authorization header. Valid tokens put the identity into the context;
// everything else answers 401.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, Email, claims.Email)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
