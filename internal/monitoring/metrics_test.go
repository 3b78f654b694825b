package monitoring

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusError struct{ code int }

func (e *fakeStatusError) Error() string       { return fmt.Sprintf("status %d", e.code) }
func (e *fakeStatusError) HTTPStatusCode() int { return e.code }

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "net failure" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

var _ net.Error = (*fakeNetError)(nil)

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected APIErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "failed to request"), ErrorTypeTimeout},
		{"canceled", errors.Wrap(context.Canceled, "failed to request"), ErrorTypeCanceled},
		{"server status", &fakeStatusError{code: 500}, ErrorTypeServerError},
		{"client status", errors.Wrap(&fakeStatusError{code: 404}, "lookup"), ErrorTypeClientError},
		{"network timeout", &fakeNetError{timeout: true}, ErrorTypeTimeout},
		{"network", errors.Wrap(&fakeNetError{}, "dial"), ErrorTypeNetworkError},
		{"payload", errors.New(`missing field "hash"`), ErrorTypeInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyAPIError(tt.err))
		})
	}
}

func TestExternalAPIMetrics_Record(t *testing.T) {
	metrics := NewExternalAPIMetrics()
	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)

	metrics.RecordAPICall("blockchain_info", "unspent", "success", 0.2)
	metrics.RecordAPICall("blockchain_info", "unspent", "server_error", 0.1)
	metrics.RecordTimeout("blockchain_info", "request")

	calls := gatherFamily(t, registry, "btc_analytics_external_api_calls_total")
	require.NotNil(t, calls)
	assert.Len(t, calls.GetMetric(), 2)

	timeouts := gatherFamily(t, registry, "btc_analytics_external_api_timeouts_total")
	require.NotNil(t, timeouts)
	assert.Equal(t, float64(1), timeouts.GetMetric()[0].GetCounter().GetValue())
}

func TestExternalAPIMetrics_NilIsNoop(t *testing.T) {
	var metrics *ExternalAPIMetrics

	assert.NotPanics(t, func() {
		metrics.RecordAPICall("blockchain_info", "unspent", "success", 0.1)
		metrics.RecordTimeout("blockchain_info", "request")
	})
}
