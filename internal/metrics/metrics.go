package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CreationsTotal counts redirect creation attempts by outcome
	// (created, conflict, error).
	CreationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redirector_creations_total",
			Help: "Total number of redirect creation attempts",
		},
		[]string{"outcome"},
	)

	// ResolutionsTotal counts redirect lookups by outcome (hit, miss, error).
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redirector_resolutions_total",
			Help: "Total number of redirect resolutions",
		},
		[]string{"outcome"},
	)
)
