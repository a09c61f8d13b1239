package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrInvalidToken    = &AppError{Code: http.StatusUnauthorized, Message: "Invalid or expired token"}
	ErrInternalServer  = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrTooManyRequests = &AppError{Code: http.StatusTooManyRequests, Message: "Rate limit exceeded. Please try again later."}
)

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidArgumentError creates a bad request error for malformed caller input
func NewInvalidArgumentError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
		cause:   err,
	}
}

// NewSurfaceUnavailableError reports that the print host refused to open a surface
func NewSurfaceUnavailableError(err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: "Unable to open print surface: " + err.Error(),
		cause:   err,
	}
}

// GetAppError converts an error to AppError. Anything else becomes an internal
// server error that keeps err as its cause but does not expose its text.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    ErrInternalServer.Code,
		Message: ErrInternalServer.Message,
		cause:   err,
	}
}
