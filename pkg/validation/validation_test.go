package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"businessEmail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	fields, err := Struct(loginPayload{Email: "vendor@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestStruct_MissingFields(t *testing.T) {
	fields, err := Struct(loginPayload{})
	require.NoError(t, err)
	require.Len(t, fields, 2)

	// Fields are named by json tag, not struct field name.
	assert.Equal(t, "businessEmail", fields[0].Field)
	assert.Equal(t, "businessEmail is required", fields[0].Message)
	assert.Equal(t, "password", fields[1].Field)
	assert.Equal(t, "password is required", fields[1].Message)
}

func TestStruct_BadEmail(t *testing.T) {
	fields, err := Struct(loginPayload{Email: "not-an-email", Password: "pw"})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "businessEmail", fields[0].Field)
	assert.Equal(t, "must be a valid email address", fields[0].Message)
	assert.Equal(t, "not-an-email", fields[0].Value)
}

func TestStruct_PasswordValueWithheld(t *testing.T) {
	type payload struct {
		Password string `json:"password" validate:"min=8"`
	}

	fields, err := Struct(payload{Password: "short"})
	require.NoError(t, err)
	require.Len(t, fields, 1)

	// The offending value is echoed for ordinary fields but never for
	// credentials.
	assert.Equal(t, "password", fields[0].Field)
	assert.Nil(t, fields[0].Value)
}
