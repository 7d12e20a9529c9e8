package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewNotFoundError("sale not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "sale not found: resource not found", err.Error())

	wrapped := fmt.Errorf("service: %w", NewValidationError("bad amount"))
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
}

func TestNewAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(500, "failed to save payment", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	bare := NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", bare.Error())
}
