package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the kind of client failure
type ErrorType string

const (
	// ErrTypeConfiguration indicates an unusable client configuration
	ErrTypeConfiguration ErrorType = "configuration"

	// ErrTypeNetwork indicates the request never got an HTTP response
	ErrTypeNetwork ErrorType = "network"

	// ErrTypeStatus indicates a non-2xx HTTP status
	ErrTypeStatus ErrorType = "status"

	// ErrTypeSchema indicates a body that is not a well-formed AnalysisResult
	ErrTypeSchema ErrorType = "schema"

	// ErrTypeInternal indicates a failure building the request
	ErrTypeInternal ErrorType = "internal"
)

// ResponseError is returned by every failing client call
type ResponseError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// StatusCode for HTTP status errors
	StatusCode int `json:"status_code,omitempty"`

	// RequestID is the X-Request-ID sent with the failing request
	RequestID string `json:"request_id,omitempty"`

	// Body holds the start of an error response body
	Body string `json:"body,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	parts := []string{fmt.Sprintf("type=%s", e.Type)}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("request_id=%s", e.RequestID))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *ResponseError) Unwrap() error {
	return e.Cause
}

// Is matches another *ResponseError of the same type
func (e *ResponseError) Is(target error) bool {
	if re, ok := target.(*ResponseError); ok {
		return e.Type == re.Type
	}
	return false
}

// Sentinels for errors.Is checks
var (
	ErrConfiguration = &ResponseError{Type: ErrTypeConfiguration}
	ErrNetwork       = &ResponseError{Type: ErrTypeNetwork}
	ErrStatus        = &ResponseError{Type: ErrTypeStatus}
	ErrSchema        = &ResponseError{Type: ErrTypeSchema}
)

func newError(errType ErrorType, message string, cause error) *ResponseError {
	return &ResponseError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// TypeOf returns the ErrorType of err, or "" when err is not a client error
func TypeOf(err error) ErrorType {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Type
	}
	return ""
}
