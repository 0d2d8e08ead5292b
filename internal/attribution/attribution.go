// Package attribution resolves visitor identities from request cookies and
// issues the cookie pair that drives downstream conversion matching.
package attribution

import (
	"net/http"
	"time"

	"linktrack/pkg/ident"
)

const (
	// VisitorCookie carries the pseudonymous visitor identifier. Readable
	// by client-side scripts for analytics.
	VisitorCookie = "lt_vid"
	// AttributionCookie carries the token that should receive conversion
	// credit. HTTP-only.
	AttributionCookie = "lt_attr"

	// minVisitorIDLen is the shape threshold for trusting an inbound
	// visitor cookie value.
	minVisitorIDLen = 10
)

// ResolveVisitor returns the visitor identifier for the request and whether
// the browser already carried one. A syntactically valid inbound cookie is
// reused verbatim; otherwise a fresh random identifier is minted.
func ResolveVisitor(r *http.Request) (visitorID string, isReturning bool) {
	if c, err := r.Cookie(VisitorCookie); err == nil && len(c.Value) >= minVisitorIDLen {
		return c.Value, true
	}
	return ident.NewVisitorID(), false
}

// Cookies builds the visitor and attribution cookies for a resolved link.
// Both expire windowDays from now, anchored to the link's own attribution
// window so concurrent campaigns can run different lengths.
func Cookies(visitorID, linkToken string, windowDays int, secure bool) []*http.Cookie {
	expires := time.Now().Add(time.Duration(windowDays) * 24 * time.Hour)
	maxAge := windowDays * 24 * 60 * 60

	return []*http.Cookie{
		{
			Name:     VisitorCookie,
			Value:    visitorID,
			Path:     "/",
			Expires:  expires,
			MaxAge:   maxAge,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		{
			Name:     AttributionCookie,
			Value:    linkToken,
			Path:     "/",
			Expires:  expires,
			MaxAge:   maxAge,
			Secure:   secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}
