package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer token signing
type AuthSettings struct {
	Secret   string        `mapstructure:"secret" validate:"required,min=32"`
	TokenTTL time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// CheckoutSettings configures the price charged for a one year registration
type CheckoutSettings struct {
	PriceCents int64  `mapstructure:"price_cents" validate:"min=0"`
	Currency   string `mapstructure:"currency" validate:"required,len=3,uppercase"`
}

// Validate checks that all fields in CheckoutSettings are valid
func (s *CheckoutSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for CheckoutSettings: %w", err)
	}
	return nil
}
