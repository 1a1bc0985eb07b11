package middleware

import (
	"context"
	"net/http"
	"strings"

	"moviehub-be/internal/token"

	"github.com/gorilla/mux"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFrom extracts the authenticated user's claims from the request
// context. The second return is false outside an Auth-protected route.
func ClaimsFrom(r *http.Request) (*token.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*token.Claims)
	return claims, ok
}

// Auth validates the bearer token and stores its claims in the request
// context.
func Auth(tokens *token.JWTService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or malformed token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose token does not carry the admin flag.
// Must run after Auth.
func AdminOnly() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r)
			if !ok || !claims.IsAdmin {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
