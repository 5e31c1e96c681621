package contacts

import (
	"errors"
	"time"

	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// Contact entity, the registrant data used for domain registrations
type Contact struct {
	ID        uint
	OwnerID   uint    `validate:"required"`
	FirstName string  `validate:"required,max=150"`
	LastName  string  `validate:"required,max=150"`
	Street    string  `validate:"required,max=150"`
	City      string  `validate:"required,max=150"`
	Postal    string  `validate:"required,max=150"`
	Country   string  `validate:"required,max=150"`
	Phone     string  `validate:"required,max=150"`
	Email     string  `validate:"required,email,max=150"`
	APIID     string  `validate:"max=16"`
	APILog    *string `validate:"omitempty,max=1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Contact struct
func (c *Contact) Validate() error {
	return validators.ValidateStruct(c)
}

// IsRegistered reports whether the contact exists at the registrar
func (c *Contact) IsRegistered() bool {
	return c.APIID != ""
}

// Details returns the fields sent to the registrar
func (c *Contact) Details() registrar.ContactDetails {
	return registrar.ContactDetails{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Street:    c.Street,
		City:      c.City,
		Postal:    c.Postal,
		Country:   c.Country,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

// SetAPILog stores raw, truncated to the column size
func (c *Contact) SetAPILog(raw string) {
	log := registrar.TruncateAPILog(raw)
	c.APILog = &log
}

// FromRegistrar builds a contact for ownerID from registrar data
func FromRegistrar(ownerID uint, info *registrar.ContactInfo) *Contact {
	return &Contact{
		OwnerID:   ownerID,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Street:    info.Street,
		City:      info.City,
		Postal:    info.Postal,
		Country:   info.Country,
		Phone:     info.Phone,
		Email:     info.Email,
		APIID:     info.Handle,
	}
}

var (
	// ErrNotFound is returned when no contact matches for the owner
	ErrNotFound = errors.New("contact not found")
	// ErrInUse is returned when deleting a contact referenced by domains
	ErrInUse = errors.New("contact is used by a domain")
)
