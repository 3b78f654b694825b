package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics contains the HTTP request metrics and the tool call metrics
type HTTPMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	responseSize     *prometheus.HistogramVec
	inFlightRequests *prometheus.GaugeVec

	toolCalls        *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btc_analytics_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btc_analytics_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		responseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btc_analytics_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 2, 8), // 100B to 12KB
			},
			[]string{"method", "path", "status"},
		),

		inFlightRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "btc_analytics_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
			[]string{"method", "path"},
		),

		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btc_analytics_tool_calls_total",
				Help: "Total number of tool and prompt invocations",
			},
			[]string{"tool", "status"},
		),

		toolCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btc_analytics_tool_call_duration_seconds",
				Help:    "Duration of tool and prompt invocations in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
			},
			[]string{"tool", "status"},
		),
	}
}

func (m *HTTPMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.responseSize,
		m.inFlightRequests,
		m.toolCalls,
		m.toolCallDuration,
	)
}

// RecordToolCall records one tool invocation. status is "success" or "error".
func (m *HTTPMetrics) RecordToolCall(tool, status string, duration float64) {
	m.toolCalls.WithLabelValues(tool, status).Inc()
	if duration > 0 {
		m.toolCallDuration.WithLabelValues(tool, status).Observe(duration)
	}
}

// HTTPMetricsMiddleware creates a Gin middleware for HTTP metrics collection
func HTTPMetricsMiddleware(metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		// unmatched routes have no template, fall back to a constant to bound label cardinality
		if path == "" {
			path = "unmatched"
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Inc()
		defer metrics.inFlightRequests.WithLabelValues(method, path).Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		responseSize := float64(c.Writer.Size())

		metrics.requestDuration.WithLabelValues(method, path, status).Observe(duration)
		metrics.requestsTotal.WithLabelValues(method, path, status).Inc()
		if responseSize > 0 {
			metrics.responseSize.WithLabelValues(method, path, status).Observe(responseSize)
		}
	}
}

// ToolMetricsRecorder records tool outcomes. A nil recorder is a no-op so
// components can run without a metrics registry.
type ToolMetricsRecorder struct {
	metrics *HTTPMetrics
}

func NewToolMetricsRecorder(metrics *HTTPMetrics) *ToolMetricsRecorder {
	return &ToolMetricsRecorder{
		metrics: metrics,
	}
}

func (r *ToolMetricsRecorder) RecordSuccess(tool string, duration time.Duration) {
	if r == nil || r.metrics == nil {
		return
	}
	r.metrics.RecordToolCall(tool, "success", duration.Seconds())
}

func (r *ToolMetricsRecorder) RecordError(tool string, duration time.Duration) {
	if r == nil || r.metrics == nil {
		return
	}
	r.metrics.RecordToolCall(tool, "error", duration.Seconds())
}
