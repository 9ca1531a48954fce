package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skema_validations_total",
				Help: "Total number of validation requests by schema and result",
			},
			[]string{"schema", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skema_validation_duration_seconds",
				Help:    "Duration of schema validation including body decoding",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"schema"},
		),
	}
	m.registry.MustRegister(
		m.validations,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(schema, result string, elapsed time.Duration) {
	m.validations.WithLabelValues(schema, result).Inc()
	m.duration.WithLabelValues(schema).Observe(elapsed.Seconds())
}
