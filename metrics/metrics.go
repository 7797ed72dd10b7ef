// Package metrics holds the Prometheus collectors of the wardrobe service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dress_diary",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dress_diary",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	decodeSkips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dress_diary",
			Subsystem: "decoder",
			Name:      "skipped_records_total",
			Help:      "Store records dropped because no identity could be established.",
		},
		[]string{"kind"},
	)

	drops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dress_diary",
			Subsystem: "canvas",
			Name:      "drops_total",
			Help:      "Drops on the composition board by result.",
		},
		[]string{"result"},
	)

	outfitSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dress_diary",
			Subsystem: "outfits",
			Name:      "saves_total",
			Help:      "Outfit save attempts by result.",
		},
		[]string{"result"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dress_diary",
			Subsystem: "canvas",
			Name:      "active_sessions",
			Help:      "Composition sessions currently open.",
		},
	)

	prunedSessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dress_diary",
			Subsystem: "canvas",
			Name:      "pruned_sessions_total",
			Help:      "Idle composition sessions abandoned by the janitor.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		decodeSkips,
		drops,
		outfitSaves,
		activeSessions,
		prunedSessions,
	)
}

// Handler exposes the registry over HTTP
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one handled request
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDecodeSkip counts a record dropped by the decoder
func RecordDecodeSkip(kind string) {
	decodeSkips.WithLabelValues(kind).Inc()
}

// RecordDrop counts a drop by result ("accepted", "moved", "rejected")
func RecordDrop(result string) {
	drops.WithLabelValues(result).Inc()
}

// RecordOutfitSave counts an outfit save attempt by result
func RecordOutfitSave(result string) {
	outfitSaves.WithLabelValues(result).Inc()
}

// SetActiveSessions sets the number of open composition sessions
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// RecordPrunedSessions counts sessions abandoned for inactivity
func RecordPrunedSessions(n int) {
	prunedSessions.Add(float64(n))
}
