package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/markbaxman/WightCars-sub000/application/user"
	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (browse, /login, /register, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required).
// Browsing is public only as GET /cars and GET /cars/{id}; deeper car
// subresources (messages, save, status) stay authenticated.
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/healthz" || path == "/metrics" {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}
	if method == http.MethodGet && strings.HasPrefix(path, "/cars") {
		rest := strings.TrimPrefix(path, "/cars")
		if rest == "" {
			return true
		}
		if strings.HasPrefix(rest, "/") && !strings.Contains(rest[1:], "/") {
			return true
		}
	}

	return false
}
