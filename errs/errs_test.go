package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"not found", NewNotFound("project"), http.StatusNotFound, ErrNotFound},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "admin_users_email_key"`), http.StatusConflict, ErrAlreadyExists},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: admin_users.email"), http.StatusConflict, ErrAlreadyExists},
		{"connection", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("save", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	assert.True(t, IsDatabaseConnectionError(NewDatabaseError("list", "project", errors.New("failed to connect to host"))))
}

func TestApiErrMessages(t *testing.T) {
	err := NewValidationError("project", map[string]string{"title": "cannot be blank"})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "invalid project payload: validation failed", err.Message())
	assert.False(t, err.IsServerError())

	root := errors.New("disk full")
	storage := NewStorageError("write upload", root)
	wrapped := NewInternalErrorWithCause("saving media", storage)
	assert.True(t, wrapped.IsServerError())
	assert.Equal(t, "saving media: internal server error -> storage operation failed: Failed to write upload -> disk full", wrapped.GetFullError())

	assert.True(t, IsUnauthorized(NewInvalidTokenError(errors.New("expired"))))
	assert.True(t, IsInvalidCredentialsError(NewInvalidCredentialsError()))
	assert.False(t, IsUnauthorized(NewInvalidCredentialsError()))
}
