// Package errors provides custom error types for the chatdb gateway client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrGatewayFailure  = errors.New("gateway failure")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrEmptyCommand    = errors.New("command cannot be empty")
)

// Kind classifies where a gateway failure originated.
type Kind int

const (
	// KindTransport means the request never produced an HTTP response.
	KindTransport Kind = iota
	// KindRemote means the service answered with a non-2xx status.
	KindRemote
	// KindParse means a 2xx response could not be understood.
	KindParse
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// GatewayError is the single failure type returned by the query gateway.
// Message is always human readable and is what ends up in the chat.
type GatewayError struct {
	Kind       Kind
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	if e.Endpoint != "" {
		return fmt.Sprintf("gateway error at %s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

// Unwrap returns the underlying cause
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *GatewayError) Is(target error) bool {
	if target == ErrGatewayFailure {
		return true
	}
	if target == ErrInvalidResponse {
		return e.Kind == KindParse
	}
	_, ok := target.(*GatewayError)
	return ok
}

// NewTransportError wraps a failure to reach the endpoint.
func NewTransportError(endpoint string, cause error) *GatewayError {
	msg := "network error"
	if cause != nil {
		msg = cause.Error()
	}
	return &GatewayError{
		Kind:     KindTransport,
		Endpoint: endpoint,
		Message:  msg,
		Err:      cause,
	}
}

// NewRemoteError creates an error for a non-2xx response.
// An empty message falls back to a generic status line.
func NewRemoteError(statusCode int, endpoint, message, body string) *GatewayError {
	if message == "" {
		message = fmt.Sprintf("Request failed with status code %d", statusCode)
	}
	return &GatewayError{
		Kind:       KindRemote,
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// NewParseError creates an error for a response body that is not a JSON object.
func NewParseError(endpoint, body string) *GatewayError {
	return &GatewayError{
		Kind:     KindParse,
		Endpoint: endpoint,
		Message:  ErrInvalidResponse.Error(),
		Body:     body,
		Err:      ErrInvalidResponse,
	}
}

// AsGatewayError extracts a *GatewayError from the chain.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsGatewayError reports whether err is a gateway failure
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayFailure)
}

// IsNetworkError reports whether the request never reached the service
func IsNetworkError(err error) bool {
	gwErr, ok := AsGatewayError(err)
	return ok && gwErr.Kind == KindTransport
}

// GetHTTPStatus returns the HTTP status code, or 0 if the error has none
func GetHTTPStatus(err error) int {
	if gwErr, ok := AsGatewayError(err); ok {
		return gwErr.StatusCode
	}
	return 0
}

// GetEndpoint returns the endpoint the failed request targeted
func GetEndpoint(err error) string {
	if gwErr, ok := AsGatewayError(err); ok {
		return gwErr.Endpoint
	}
	return ""
}

// GetResponseBody returns the raw response body captured with the error
func GetResponseBody(err error) string {
	if gwErr, ok := AsGatewayError(err); ok {
		return gwErr.Body
	}
	return ""
}

// UserMessage returns the text shown to the user for a failure.
// Gateway errors yield their extracted message; anything else its Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if gwErr, ok := AsGatewayError(err); ok {
		return gwErr.Message
	}
	return err.Error()
}
