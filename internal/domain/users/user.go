package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// MaxUsernameLength is the longest accepted username
const MaxUsernameLength = 64

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// User entity
type User struct {
	ID           uint
	Username     string `validate:"required,max=64,username"`
	Email        string `validate:"required,email,max=254"`
	PasswordHash string `validate:"required"`
	IsStaff      bool
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate for validating User struct. Username rule violations are reported
// with their user facing message.
func (u *User) Validate() error {
	if len(u.Username) > MaxUsernameLength {
		return validators.NewValidationError(fmt.Sprintf("Username: Ensure this value has at most %d characters.", MaxUsernameLength))
	}
	if err := validators.ValidateUsername(u.Username); err != nil {
		return validators.NewValidationError("Username: " + err.Error())
	}
	return validators.ValidateStruct(u)
}

// ValidatePassword checks the password policy
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return validators.NewValidationError(fmt.Sprintf("Password: This password is too short. It must contain at least %d characters.", MinPasswordLength))
	}
	return nil
}

// Session is the result of a successful login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

var (
	// ErrNotFound is returned when no user matches
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("A user with that username already exists.")
	// ErrEmailTaken is returned when registering an existing email
	ErrEmailTaken = errors.New("A user with that email already exists.")
	// ErrInvalidCredentials is returned for a wrong username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInactive is returned for users that may not log in
	ErrInactive = errors.New("user is inactive")
	// ErrUnauthorized is returned for missing, invalid or expired tokens
	ErrUnauthorized = errors.New("unauthorized")
)
