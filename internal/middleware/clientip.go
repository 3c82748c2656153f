package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the client address for a request.
// Checks X-Forwarded-For and X-Real-IP headers for proxied requests,
// falling back to the raw connection address.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For may contain multiple addresses; the first is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx >= 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// RemoteAddr carries a port when set by net/http.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
