package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error_UsesMessageWhenSet(t *testing.T) {
	err := NewAppError(ErrNotFound, "painting missing", CodeNotFound)
	assert.Equal(t, "painting missing", err.Error())
}

func TestAppError_Error_FallsBackToWrappedError(t *testing.T) {
	err := NewAppError(ErrNotFound, "", CodeNotFound)
	assert.Equal(t, "resource not found", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewAppError(ErrDuplicateEntry, "sku taken", CodeDuplicateEntry)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrap_AddsContext(t *testing.T) {
	err := Wrap(ErrInternal, "saving inquiry")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "saving inquiry")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(ErrPaintingNotFound))
	assert.True(t, IsNotFound(ErrInquiryNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrPaintingNotFound)))
	assert.False(t, IsNotFound(ErrDuplicateEntry))
	assert.False(t, IsNotFound(errors.New("other")))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not found", ErrNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", ErrInquiryNotFound), CodeNotFound},
		{"duplicate", ErrDuplicateEntry, CodeDuplicateEntry},
		{"invalid input", ErrInvalidInput, CodeInvalidInput},
		{"not available", ErrPaintingNotAvailable, CodeNotAvailable},
		{"notification failed", ErrNotificationFailed, CodeNotificationFailed},
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"unknown", errors.New("boom"), CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorCode_AppErrorWins(t *testing.T) {
	err := NewAppError(ErrInternal, "bad status value", CodeInvalidInput)
	assert.Equal(t, CodeInvalidInput, GetErrorCode(fmt.Errorf("update: %w", err)))
}
