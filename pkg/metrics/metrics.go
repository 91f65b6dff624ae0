// Package metrics holds the Prometheus collectors shared across the
// application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// InvitationsRelayed counts relay email attempts partitioned by outcome
	// ("success" or "failure").
	InvitationsRelayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naamkaran_invitations_relayed_total",
		Help: "Number of invitation emails the relay endpoint attempted to send.",
	}, []string{"outcome"})

	// RenderDuration observes how long a single card capture takes.
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "naamkaran_render_duration_seconds",
		Help:    "Time spent rasterizing the invitation card.",
		Buckets: DefaultBuckets,
	})
)
