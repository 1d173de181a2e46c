package dispatch_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_events_publish_retries_total",
			Help: "Total number of dispatch event publishes that needed a retry",
		},
		[]string{"event_type", "result"},
	)

	GatewayPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_events_publish_duration_seconds",
			Help:    "Duration of dispatch event publishes including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"event_type", "result"},
	)
)
