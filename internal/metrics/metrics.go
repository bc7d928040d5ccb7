package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dearly_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dearly_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CascadeRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dearly_album_cascade_runs_total",
			Help: "Cascading album deactivations by outcome.",
		},
		[]string{"result"},
	)

	AlbumsDeactivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dearly_albums_deactivated_total",
			Help: "Albums set inactive by cascading deletes.",
		},
	)

	SignInFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dearly_signin_failures_total",
			Help: "Rejected sign-in attempts.",
		},
	)
)
