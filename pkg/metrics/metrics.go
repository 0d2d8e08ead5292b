// Package metrics exposes Prometheus counters for the redirect and
// attribution pipeline. promauto registers everything with the default
// registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedirectsTotal counts successful destination redirects
	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful destination redirects",
		},
	)

	// FallbackRedirectsTotal counts fallback redirects by cause
	FallbackRedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_redirects_total",
			Help: "Total number of fallback redirects",
		},
		[]string{"cause"}, // invalid_token, unavailable, lookup_error
	)

	// ClicksRecordedTotal counts durably recorded clicks
	ClicksRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_recorded_total",
			Help: "Total number of click events recorded",
		},
	)

	// UniqueClicksTotal counts clicks classified as unique
	UniqueClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unique_clicks_total",
			Help: "Total number of clicks classified as unique per link",
		},
	)

	// TrackingFailuresTotal counts clicks lost to persistence failures
	TrackingFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracking_failures_total",
			Help: "Total number of clicks that failed to record",
		},
	)

	// LinkCacheHitsTotal counts link cache hits on the redirect path
	LinkCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "link_cache_hits_total",
			Help: "Total number of link cache hits",
		},
	)

	// LinkCacheMissesTotal counts link cache misses on the redirect path
	LinkCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "link_cache_misses_total",
			Help: "Total number of link cache misses",
		},
	)
)

// RecordRedirect increments the destination redirect counter
func RecordRedirect() {
	RedirectsTotal.Inc()
}

// RecordFallback increments the fallback redirect counter for a cause
func RecordFallback(cause string) {
	FallbackRedirectsTotal.WithLabelValues(cause).Inc()
}

// RecordClick increments the recorded click counters
func RecordClick(unique bool) {
	ClicksRecordedTotal.Inc()
	if unique {
		UniqueClicksTotal.Inc()
	}
}

// RecordTrackingFailure increments the tracking failure counter
func RecordTrackingFailure() {
	TrackingFailuresTotal.Inc()
}

// RecordCacheHit increments the link cache hit counter
func RecordCacheHit() {
	LinkCacheHitsTotal.Inc()
}

// RecordCacheMiss increments the link cache miss counter
func RecordCacheMiss() {
	LinkCacheMissesTotal.Inc()
}
