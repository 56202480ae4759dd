package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types reported to clients.
const (
	TypeValidation = "ValidationError"
	TypeClient     = "ClientError"
	TypeServer     = "ServerError"
)

// AppError is an error with an HTTP status and optional client-facing detail.
type AppError struct {
	Status  int
	Message string
	Details []string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Type classifies the error for the response envelope.
func (e *AppError) Type() string {
	switch {
	case e.Status >= http.StatusInternalServerError:
		return TypeServer
	case len(e.Fields) > 0 || len(e.Details) > 0:
		return TypeValidation
	default:
		return TypeClient
	}
}

// WithDetails attaches human readable details.
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)
	return e
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func Wrap(err error, status int, message string) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Validation is a 400 carrying per-item details.
func Validation(message string, details ...string) *AppError {
	return New(http.StatusBadRequest, message).WithDetails(details...)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message)
}

// Internal wraps an unexpected failure as a 500.
func Internal(err error) *AppError {
	return Wrap(err, http.StatusInternalServerError, "Internal server error")
}

// As extracts an *AppError from err.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
