package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the transport-facing error returned by HTTP handlers.
//
// Handlers translate use case sentinel errors into an AppError with a stable
// machine-readable code, a human message and the HTTP status to respond with.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Internal   error
	Details    map[string]any
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// ToHTTPError renders the public part of the error. Internal causes are never exposed.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message, Details: e.Details}}
}

// WithDetails returns a copy carrying extra response details.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func NewDomainError(code, message string, internal error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Internal: internal}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Common errors shared by every handler.
var (
	ErrInvalidRequest = NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	ErrUnauthorized   = NewDomainErrorSimple("SESSION_INVALID", "Authentication required", http.StatusUnauthorized)
	ErrTooManyRequest = NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
)

func NewInternalError(err error) *AppError {
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
