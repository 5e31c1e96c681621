//go:build unit
// +build unit

package users

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/pkg/validators"
)

func validUser() *User {
	return &User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}
}

func TestUserValidation(t *testing.T) {
	assert.NoError(t, validUser().Validate())
}

func TestUserValidation_Username(t *testing.T) {
	tests := []struct {
		name     string
		username string
		message  string
	}{
		{"uppercase", "Alice", "Username: " + validators.UsernameCharsetMessage},
		{"underscore", "al_ice", "Username: " + validators.UsernameCharsetMessage},
		{"empty", "", "Username: " + validators.UsernameCharsetMessage},
		{"hyphens", "---", "Username: " + validators.UsernameHyphensMessage},
		{"too long", strings.Repeat("a", 65), "Username: Ensure this value has at most 64 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			u.Username = tt.username

			err := u.Validate()
			var verr *validators.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{tt.message}, verr.Messages)
		})
	}
}

func TestUserValidation_Email(t *testing.T) {
	u := validUser()
	u.Email = "not-an-email"

	err := u.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Email, Tag: email")
}

func TestUserValidation_MissingHash(t *testing.T) {
	u := validUser()
	u.PasswordHash = ""

	err := u.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: PasswordHash, Tag: required")
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
}
