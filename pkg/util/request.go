package util

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client IP from forwarding headers, first non-empty
// value wins: X-Forwarded-For (first hop), X-Real-IP, then the connection
// remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
		return rip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Truncate returns s cut to at most max bytes
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
