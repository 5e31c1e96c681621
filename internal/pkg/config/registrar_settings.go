package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CentralNicRegistrar selects the CentralNic Reseller (RRPproxy) API
const CentralNicRegistrar = "centralnic"

// NetimRegistrar selects the Netim REST API
const NetimRegistrar = "netim"

// DefaultCentralNicURL is the production RRPproxy command endpoint
const DefaultCentralNicURL = "https://api.rrpproxy.net/api/call.cgi"

// CentralNicSettings holds the reseller credentials for the RRPproxy API
type CentralNicSettings struct {
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

// NetimSettings holds the reseller credentials for the Netim REST API
type NetimSettings struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	UserID   string `mapstructure:"user_id" validate:"required"`
	Secret   string `mapstructure:"secret" validate:"required"`
	Language string `mapstructure:"language" validate:"omitempty,len=2"`
}

// RegistrarSettings selects the registrar provider and carries its credentials.
// Only the block matching Provider is validated.
type RegistrarSettings struct {
	Provider   string             `mapstructure:"provider" validate:"required,oneof=centralnic netim"`
	Timeout    time.Duration      `mapstructure:"timeout" validate:"min=0"`
	CentralNic CentralNicSettings `mapstructure:"centralnic" validate:"-"`
	Netim      NetimSettings      `mapstructure:"netim" validate:"-"`
}

// Validate checks that the selected provider is fully configured
func (s *RegistrarSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RegistrarSettings: %w", err)
	}

	var err error
	switch s.Provider {
	case CentralNicRegistrar:
		err = validate.Struct(&s.CentralNic)
	case NetimRegistrar:
		err = validate.Struct(&s.Netim)
	}
	if err != nil {
		return fmt.Errorf("validation failed for %s registrar settings: %w", s.Provider, err)
	}
	return nil
}

// EffectiveTimeout returns the HTTP timeout for registrar calls, defaulting to 30s
func (s *RegistrarSettings) EffectiveTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second
	}
	return s.Timeout
}
