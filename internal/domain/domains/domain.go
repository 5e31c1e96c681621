package domains

import (
	"errors"
	"time"

	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// Domain entity
type Domain struct {
	ID          uint
	OwnerID     uint     `validate:"required"`
	ContactID   uint     `validate:"required"`
	Name        string   `validate:"required,max=253,domainname"`
	Nameservers []string `validate:"max=4,dive,max=253,domainname"`
	APIID       string   `validate:"max=255"`
	APILog      *string  `validate:"omitempty,max=1000"`
	// Pending stays set until the domain has been paid for
	Pending   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Domain struct
func (d *Domain) Validate() error {
	return validators.ValidateStruct(d)
}

// SetAPILog stores raw, truncated to the column size
func (d *Domain) SetAPILog(raw string) {
	log := registrar.TruncateAPILog(raw)
	d.APILog = &log
}

// CreateRequest carries the user input for a new domain
type CreateRequest struct {
	OwnerID     uint
	ContactID   uint
	Name        string
	Nameservers []string
}

// Availability is the answer to a domain check
type Availability struct {
	Name      string
	Available bool
	Reason    string
}

var (
	// ErrNotFound is returned when no domain matches for the owner
	ErrNotFound = errors.New("domain not found")
	// ErrAlreadyExists is returned when the name is already stored
	ErrAlreadyExists = errors.New("domain already exists")
	// ErrTooManyNameservers is returned for more than four nameservers
	ErrTooManyNameservers = errors.New("at most 4 nameservers are supported")
	// ErrContactNotRegistered is returned when the contact has no registrar handle
	ErrContactNotRegistered = errors.New("contact is not registered with the registrar")
	// ErrNotPending is returned when paying for a domain that is already active
	ErrNotPending = errors.New("domain is not pending")
)
