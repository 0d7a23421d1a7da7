package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	// Test error without cause
	err := New(ErrorTypeValidation, "test_op", "test message")
	expected := "[validation] test_op: test message"
	assert.Equal(t, expected, err.Error())

	// Test error with cause
	cause := errors.New("underlying error")
	err = Wrap(cause, ErrorTypeDimension, "check_op", "shape check failed")
	assert.Contains(t, err.Error(), "[dimension] check_op: shape check failed")
	assert.Contains(t, err.Error(), "underlying error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestStructuredError_WithContext(t *testing.T) {
	err := New(ErrorTypeDimension, "test_op", "test message")
	err = err.WithContext("topics", 4).WithContext("terms", 120)

	assert.Equal(t, 4, err.Context["topics"])
	assert.Equal(t, 120, err.Context["terms"])
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, ErrorTypeDimension, NewDimensionError("op", "msg").Type)
	assert.Equal(t, ErrorTypeValidation, NewValidationError("op", "msg").Type)
	assert.Equal(t, ErrorTypeComputation, NewComputationError("op", "msg").Type)

	// Wrap returns nil for nil error
	assert.Nil(t, Wrap(nil, ErrorTypeValidation, "op", "msg"))
}

func TestTypePredicates(t *testing.T) {
	dim := NewDimensionError("op", "msg")
	assert.True(t, IsDimensionError(dim))
	assert.False(t, IsValidationError(dim))

	wrapped := fmt.Errorf("outer: %w", dim)
	assert.True(t, IsDimensionError(wrapped))

	assert.False(t, IsDimensionError(errors.New("plain")))
	assert.False(t, IsDimensionError(nil))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "dimension", string(ErrorTypeDimension))
	assert.Equal(t, "validation", string(ErrorTypeValidation))
	assert.Equal(t, "computation", string(ErrorTypeComputation))
}
