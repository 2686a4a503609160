// Package metrics exposes Prometheus counters for enrollment and engagement.
//
// Usage:
//
//	metrics.RecordEnrollment("created")
//	metrics.RecordWatch(metrics.WatchCounted, "catalog")
//	metrics.RecordRating("updated")
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Watch outcomes.
const (
	WatchCounted   = "counted"
	WatchDuplicate = "duplicate"
	WatchDenied    = "denied"
)

var (
	// EnrollmentsTotal counts enrollment attempts by outcome.
	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehive_enrollments_total",
			Help: "Total number of enrollment attempts",
		},
		[]string{"outcome"},
	)

	// WatchesTotal counts watch requests by outcome and the access rule applied.
	WatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehive_watches_total",
			Help: "Total number of watch requests",
		},
		[]string{"outcome", "access_reason"},
	)

	// RatingsTotal counts rating submissions by outcome.
	RatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehive_ratings_total",
			Help: "Total number of rating submissions",
		},
		[]string{"outcome"},
	)

	// ReconcileFixedTotal counts rows repaired by the reconciler, by kind.
	ReconcileFixedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehive_reconcile_fixed_total",
			Help: "Total number of derived fields repaired by reconciliation",
		},
		[]string{"kind"},
	)

	// ReconcileDuration tracks how long each reconciliation run takes.
	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coursehive_reconcile_duration_seconds",
			Help:    "Duration of reconciliation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RateLimitedTotal counts requests rejected by the per-client limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coursehive_rate_limited_total",
			Help: "Total number of requests rejected by rate limiting",
		},
	)
)

func RecordEnrollment(outcome string) {
	EnrollmentsTotal.WithLabelValues(outcome).Inc()
}

func RecordWatch(outcome, accessReason string) {
	WatchesTotal.WithLabelValues(outcome, accessReason).Inc()
}

func RecordRating(outcome string) {
	RatingsTotal.WithLabelValues(outcome).Inc()
}

// RecordReconcile records one reconciliation run.
func RecordReconcile(videos, contributions, ratings int64, elapsed time.Duration) {
	ReconcileFixedTotal.WithLabelValues("video_views").Add(float64(videos))
	ReconcileFixedTotal.WithLabelValues("contribution_views").Add(float64(contributions))
	ReconcileFixedTotal.WithLabelValues("ratings").Add(float64(ratings))
	ReconcileDuration.Observe(elapsed.Seconds())
}

func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
