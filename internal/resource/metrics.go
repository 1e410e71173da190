package resource

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts resource reads by where the records came from.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_resource_requests_total",
		Help: "Resource reads by resource and source (provider or fallback)",
	}, []string{"resource", "source"})

	// requestDuration tracks time spent producing records, fallback included.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voyage_resource_request_duration_seconds",
		Help:    "Resource read duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"resource", "source"})
)

func observe(resource string, src Source, start time.Time) {
	requestsTotal.WithLabelValues(resource, string(src)).Inc()
	requestDuration.WithLabelValues(resource, string(src)).Observe(time.Since(start).Seconds())
}

// RequestsTotal exposes the counter for a resource/source pair so callers
// and tests can read it without touching the registry.
func RequestsTotal(resource string, src Source) prometheus.Counter {
	return requestsTotal.WithLabelValues(resource, string(src))
}
