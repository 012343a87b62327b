package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the categories of errors the API can return.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeDuplicate  ErrorType = "DUPLICATE"
	ErrorTypeInternal   ErrorType = "INTERNAL"
	ErrorTypeRateLimit  ErrorType = "RATE_LIMIT"
)

// MsgValidation is the top-level message of every request validation failure.
const MsgValidation = "Validation error"

// MsgRateLimit is returned once a client exhausts its request window.
const MsgRateLimit = "Too many requests from this IP, please try again later."

// MsgInternal replaces internal error details outside development.
const MsgInternal = "Something went wrong!"

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Fields  []FieldError
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type onto an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ErrorTypeValidation, ErrorTypeDuplicate:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Status is "fail" for client errors and "error" for server errors.
func (e *AppError) Status() string {
	if e.StatusCode() < http.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

// NewValidationError creates a new validation error carrying per-field detail
func NewValidationError(message string, fields ...FieldError) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewDuplicateError creates a new duplicate-value error
func NewDuplicateError(field string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("Duplicate field value: %s. Please use another value", field),
	}
}

// NewRateLimitError creates a too-many-requests error
func NewRateLimitError() *AppError {
	return &AppError{
		Type:    ErrorTypeRateLimit,
		Message: MsgRateLimit,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// As extracts an *AppError from err, wrapping anything else as internal.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(MsgInternal, err)
}

// Is reports whether err is an *AppError of the given type.
func Is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
