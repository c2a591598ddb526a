package transport

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// parseID reads a numeric path variable.
func parseID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

// pageWindow reads the raw page/limit query parameters; the application
// layer owns clamping and defaults.
func pageWindow(r *http.Request) (int, int) {
	q := r.URL.Query()
	return queryInt(q, "page"), queryInt(q, "limit")
}

func queryInt(q url.Values, key string) int {
	v := q.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func queryInt64(q url.Values, key string) int64 {
	v := q.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// clientIP resolves the caller address for audit logs and rate limiting,
// preferring the first X-Forwarded-For hop.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
