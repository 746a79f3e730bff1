package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "authClaims"

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// isPublic mirrors the open surface: catalog reads, login and register need
// no token.
func isPublic(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	path := r.URL.Path
	if r.Method == http.MethodGet &&
		(strings.HasPrefix(path, "/api/products") || strings.HasPrefix(path, "/api/categories")) {
		return true
	}

	return path == "/api/users/login" || path == "/api/users/register"
}

// Middleware gates every other /api route behind a bearer token. Non-admin
// tokens are accepted for reads only; writes require isAdmin.
func Middleware(tm *TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, "the user is not authorized")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			claims, err := tm.Parse(tokenString)
			if err != nil {
				logger.Warn("token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				writeUnauthorized(w, "the user is not authorized")
				return
			}

			if r.Method != http.MethodGet && !claims.IsAdmin {
				writeUnauthorized(w, "the user is not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
