package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const cacheSubsystem = "forecast_cache"

// PromCollector records forecast cache latency and results under
// <service>_forecast_cache_*.
type PromCollector struct {
	latency *prometheus.HistogramVec
	results *prometheus.CounterVec
}

func NewPromCollector(serviceName string, reg prometheus.Registerer) *PromCollector {
	p := &PromCollector{
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Subsystem: cacheSubsystem,
				Name:      "operation_duration_seconds",
				Help:      "Latency of forecast cache reads and writes",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"},
		),
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Subsystem: cacheSubsystem,
				Name:      "operations_total",
				Help:      "Forecast cache operations by result (hit, miss, success, error)",
			},
			[]string{"operation", "result"},
		),
	}
	reg.MustRegister(p.latency, p.results)
	return p
}

func (p *PromCollector) ObserveLatency(operation string, d time.Duration) {
	p.latency.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrementCounter counts one operation; the first label is the result.
func (p *PromCollector) IncrementCounter(operation string, labels ...string) {
	result := "unknown"
	if len(labels) > 0 {
		result = labels[0]
	}
	p.results.WithLabelValues(operation, result).Inc()
}
