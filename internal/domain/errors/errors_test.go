package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidInput.WithDetails("rating must be between 1 and 5")

	assert.True(t, stderrors.Is(detailed, ErrInvalidInput))
	assert.False(t, stderrors.Is(detailed, ErrNotFound))
	assert.Equal(t, "rating must be between 1 and 5", detailed.Details())
	assert.Empty(t, ErrInvalidInput.Details())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrForbidden.WrapMessage("booking belongs to another account")

	assert.True(t, stderrors.Is(wrapped, ErrForbidden))
	assert.Contains(t, wrapped.Error(), "booking belongs to another account")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert booking")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert booking", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database execution failed")
}
