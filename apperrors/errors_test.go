package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		statusCode int
		status     string
	}{
		{"Validation", NewValidationError("Validation error"), http.StatusBadRequest, "fail"},
		{"NotFound", NewNotFoundError("Restaurant not found"), http.StatusNotFound, "fail"},
		{"Duplicate", NewDuplicateError("_id"), http.StatusBadRequest, "fail"},
		{"RateLimit", NewRateLimitError(), http.StatusTooManyRequests, "fail"},
		{"Internal", NewInternalError("boom", nil), http.StatusInternalServerError, "error"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.statusCode, test.err.StatusCode())
			assert.Equal(t, test.status, test.err.Status())
		})
	}
}

func TestAs_WrapsUnknownErrorsAsInternal(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	appErr := As(cause)

	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, appErr, cause)
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	notFound := NewNotFoundError("Restaurant not found")
	wrapped := pkgerrors.Wrap(notFound, "loading restaurant")

	assert.Same(t, notFound, As(wrapped))
	assert.True(t, Is(wrapped, ErrorTypeNotFound))
	assert.False(t, Is(wrapped, ErrorTypeValidation))
}

func TestNewDuplicateError_Message(t *testing.T) {
	err := NewDuplicateError("_id")

	assert.Equal(t, "Duplicate field value: _id. Please use another value", err.Message)
}
