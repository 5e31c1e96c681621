//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `validate:"required,max=64,username"`
	Domain   string `validate:"required,domainname"`
	Email    string `validate:"required,email"`
}

func TestValidateStruct_Valid(t *testing.T) {
	s := sample{Username: "alice", Domain: "example.com", Email: "alice@example.com"}
	assert.NoError(t, ValidateStruct(&s))
}

func TestValidateStruct_ReportsEachField(t *testing.T) {
	s := sample{Username: "Alice", Domain: "Example.com", Email: "nope"}

	err := ValidateStruct(&s)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"Field: Username, Tag: username",
		"Field: Domain, Tag: domainname",
		"Field: Email, Tag: email",
	}, verr.Messages)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Username: taken")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Username: taken"}, verr.Messages)
	assert.Equal(t, "validation failed: [Username: taken]", err.Error())
}
