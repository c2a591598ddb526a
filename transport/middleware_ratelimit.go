package transport

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware enforces a global token bucket plus one bucket per
// client IP. Buckets are never evicted; acceptable for a single-region
// deployment behind a known proxy.
func RateLimitMiddleware(rps float64, burst int) mux.MiddlewareFunc {
	global := rate.NewLimiter(rate.Limit(rps), burst)

	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			mu.Lock()
			lim, ok := buckets[ip]
			if !ok {
				lim = rate.NewLimiter(rate.Limit(rps), burst)
				buckets[ip] = lim
			}
			mu.Unlock()

			if !global.Allow() || !lim.Allow() {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
