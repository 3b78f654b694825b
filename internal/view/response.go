package view

// Response is the JSON envelope for non-text API responses.
type Response[T any] struct {
	Data    T           `json:"data"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func CreateResponse[T any](data T, err error, details interface{}, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: message,
		Details: details,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
