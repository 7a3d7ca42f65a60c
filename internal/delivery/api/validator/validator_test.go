package validator

import (
	"testing"

	"estate/internal/delivery/api/response"
	"estate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "a@x.com", Password: "pw123456", Name: "A"})

	assert.NoError(t, err)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	vErr, ok := errors.AsType[*ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, []response.FieldError{
		{Field: "email", Message: "email must be a valid email address", Value: "not-an-email"},
		{Field: "password", Message: "password must be at least 6 characters", Value: ""},
		{Field: "name", Message: "name is required", Value: ""},
	}, vErr.Fields)
	assert.Contains(t, err.Error(), "name is required")
}
