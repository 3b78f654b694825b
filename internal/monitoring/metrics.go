package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ExternalAPIMetrics contains all metrics for upstream explorer calls
type ExternalAPIMetrics struct {
	apiDuration *prometheus.HistogramVec
	apiCalls    *prometheus.CounterVec
	timeouts    *prometheus.CounterVec
}

func NewExternalAPIMetrics() *ExternalAPIMetrics {
	return &ExternalAPIMetrics{
		apiDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btc_analytics_external_api_duration_seconds",
				Help:    "Duration of external API calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api_name", "endpoint", "status"},
		),

		apiCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btc_analytics_external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api_name", "status"},
		),

		timeouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btc_analytics_external_api_timeouts_total",
				Help: "Total number of external API timeouts",
			},
			[]string{"api_name", "timeout_type"},
		),
	}
}

func (m *ExternalAPIMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.apiDuration,
		m.apiCalls,
		m.timeouts,
	)
}

// RecordAPICall records an API call with duration and status. Safe on a nil receiver.
func (m *ExternalAPIMetrics) RecordAPICall(apiName, endpoint, status string, duration float64) {
	if m == nil {
		return
	}
	m.apiDuration.WithLabelValues(apiName, endpoint, status).Observe(duration)
	m.apiCalls.WithLabelValues(apiName, status).Inc()
}

// RecordTimeout records a timeout event. Safe on a nil receiver.
func (m *ExternalAPIMetrics) RecordTimeout(apiName, timeoutType string) {
	if m == nil {
		return
	}
	m.timeouts.WithLabelValues(apiName, timeoutType).Inc()
}
