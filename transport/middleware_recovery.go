package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware converts a panicking handler into a JSON error response
// so a single bad request can never take the process down.
func RecoveryMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(
						"panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					writeError(w, errors.SetCustomError(constant.ErrInternal))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
