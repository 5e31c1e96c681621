package validators

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown to users when a username is rejected
const (
	UsernameCharsetMessage = "Invalid value. Should include only lowercase letters, numbers, and -"
	UsernameHyphensMessage = "Invalid value. Cannot be just hyphens."
)

var (
	// ErrUsernameCharset is returned for usernames outside [a-z0-9-]
	ErrUsernameCharset = errors.New(UsernameCharsetMessage)
	// ErrUsernameHyphens is returned for usernames made only of hyphens
	ErrUsernameHyphens = errors.New(UsernameHyphensMessage)
)

var usernamePattern = regexp.MustCompile(`^[a-z\d-]+$`)

// ValidateUsername applies the charset and hyphen rules to a username.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharset
	}
	if strings.Trim(username, "-") == "" {
		return ErrUsernameHyphens
	}
	return nil
}

// UsernameValidation is the validator tag function for "username"
func UsernameValidation(fl validator.FieldLevel) bool {
	return ValidateUsername(fl.Field().String()) == nil
}
