package errors

import (
	"net/http"
)

// ErrorKind classifies API errors for status mapping and logging.
type ErrorKind string

const (
	KindBadRequest      ErrorKind = "bad_request"
	KindPayloadTooLarge ErrorKind = "payload_too_large"
	KindUpstream        ErrorKind = "upstream"
	KindInternal        ErrorKind = "internal"
)

// APIError is the single error type handlers return. The JSON body exposes
// only the message under "error"; the kind drives the HTTP status and the
// request ID travels in the X-Request-ID header, not the body.
type APIError struct {
	Kind      ErrorKind `json:"-"`
	Message   string    `json:"error"`
	RequestID string    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error kind.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUpstream:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a client error.
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewPayloadTooLargeError creates an error for uploads over the size cap.
func NewPayloadTooLargeError(message string) *APIError {
	return &APIError{
		Kind:    KindPayloadTooLarge,
		Message: message,
	}
}

// NewUpstreamError wraps a failure from the transcription service. The
// downstream message is surfaced as-is so the user sees something actionable;
// callers fall back to a generic message when none is available.
func NewUpstreamError(err error) *APIError {
	message := "Server error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &APIError{
		Kind:    KindUpstream,
		Message: message,
	}
}

// NewInternalError creates an internal server error.
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}
