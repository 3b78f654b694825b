package monitoring

import (
	"context"
	"errors"
	"net"
)

// APIErrorType classifies upstream failures for metric labels
type APIErrorType string

const (
	ErrorTypeTimeout      APIErrorType = "timeout"
	ErrorTypeCanceled     APIErrorType = "canceled"
	ErrorTypeNetworkError APIErrorType = "network_error"
	ErrorTypeServerError  APIErrorType = "server_error"
	ErrorTypeClientError  APIErrorType = "client_error"
	ErrorTypeInvalidData  APIErrorType = "invalid_data"
	ErrorTypeUnknown      APIErrorType = "unknown"
)

// statusCoder is implemented by upstream errors carrying an HTTP status.
type statusCoder interface {
	error
	HTTPStatusCode() int
}

// ClassifyAPIError maps an upstream error onto an APIErrorType.
// Errors that are none of the transport kinds are treated as invalid payloads.
func ClassifyAPIError(err error) APIErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrorTypeCanceled
	}

	var coder statusCoder
	if errors.As(err, &coder) {
		if coder.HTTPStatusCode() >= 500 {
			return ErrorTypeServerError
		}
		return ErrorTypeClientError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorTypeTimeout
		}
		return ErrorTypeNetworkError
	}

	return ErrorTypeInvalidData
}
