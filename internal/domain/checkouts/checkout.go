package checkouts

import (
	"errors"
	"time"

	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// Status of a checkout
type Status string

// Checkout states. A checkout starts pending and ends succeeded or failed;
// a failed checkout may still succeed on a later attempt.
const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Checkout entity, the payment attempt for a pending domain
type Checkout struct {
	ID          uint
	DomainID    uint   `validate:"required"`
	Reference   string `validate:"required,uuid4"`
	Status      Status `validate:"required,oneof=pending succeeded failed"`
	AmountCents int64  `validate:"min=0"`
	Currency    string `validate:"required,len=3,uppercase"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Checkout struct
func (c *Checkout) Validate() error {
	return validators.ValidateStruct(c)
}

// Succeed moves the checkout to succeeded and reports whether it changed
func (c *Checkout) Succeed() bool {
	if c.Status == StatusSucceeded {
		return false
	}
	c.Status = StatusSucceeded
	return true
}

// Fail moves the checkout to failed and reports whether it changed.
// A succeeded checkout cannot fail.
func (c *Checkout) Fail() (bool, error) {
	switch c.Status {
	case StatusSucceeded:
		return false, ErrAlreadySucceeded
	case StatusFailed:
		return false, nil
	default:
		c.Status = StatusFailed
		return true, nil
	}
}

var (
	// ErrNotFound is returned when no checkout matches for the owner
	ErrNotFound = errors.New("checkout not found")
	// ErrAlreadySucceeded is returned when failing a paid checkout
	ErrAlreadySucceeded = errors.New("checkout already succeeded")
)
