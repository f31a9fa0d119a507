package validation

import (
	"testing"

	domainerrors "jobboard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"user_type" validate:"required,oneof=employer job_seeker"`
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(New(), signUp{
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
		Role:            "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Enter a valid email address."}, verr.Fields["email"])
	assert.Equal(t, []string{"Ensure this field has at least 8 characters."}, verr.Fields["password"])
	assert.Equal(t, []string{"Passwords don't match."}, verr.Fields["password_confirm"])
	assert.Equal(t, []string{"Must be one of: employer, job_seeker."}, verr.Fields["user_type"])
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(New(), signUp{
		Email:           "ada@example.com",
		Password:        "longenough",
		PasswordConfirm: "longenough",
		Role:            "job_seeker",
	})
	assert.NoError(t, err)
}
