package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrForbidden.WithDetails("only employers can update status").WithDetails("again")

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "access denied: again", err.Error())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrSessionExpired.WrapMessage("renewal rejected")

	assert.True(t, errors.Is(err, ErrSessionExpired))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "SESSION_EXPIRED", appErr.ErrorCode())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError().
		Add("password", "too short").
		Add("email", "invalid").
		Add("password", "must match confirmation")

	wrapped := errors.Wrap(verr, "register")

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))

	got, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"too short", "must match confirmation"}, got.Fields["password"])
	assert.Equal(t, "email: invalid, password: too short; must match confirmation", got.Details())
	assert.Equal(t, http.StatusBadRequest, got.HTTPCode())
}
