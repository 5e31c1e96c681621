package contacts

import (
	"context"

	"github.com/tofunames/tofunames/internal/domain/registrar"
)

// ContactService defines the operations on an owner's contacts
type ContactService interface {
	// Create stores the contact and creates it at the registrar. When the
	// registrar rejects it the stored row keeps the response in APILog.
	Create(ctx context.Context, contact *Contact) (*Contact, error)

	// List returns the owner's contacts, newest first
	List(ctx context.Context, ownerID uint) ([]*Contact, error)

	// GetByID retrieves one of the owner's contacts
	GetByID(ctx context.Context, ownerID, id uint) (*Contact, error)

	// DeleteByID deletes one of the owner's contacts unless a domain uses it
	DeleteByID(ctx context.Context, ownerID, id uint) error

	// ImportFromRegistrar creates local rows for registrar contacts not yet known
	ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error)
}

// ContactRepository defines the persistence of contacts
type ContactRepository interface {
	// Create adds a new Contact to the database
	Create(ctx context.Context, contact *Contact) error
	// Update saves a modified Contact
	Update(ctx context.Context, contact *Contact) error
	// GetByID retrieves a Contact of the owner by ID
	GetByID(ctx context.Context, ownerID, id uint) (*Contact, error)
	// GetByAPIID retrieves a Contact of the owner by registrar handle
	GetByAPIID(ctx context.Context, ownerID uint, apiID string) (*Contact, error)
	// ListByOwner lists the owner's Contacts, newest first
	ListByOwner(ctx context.Context, ownerID uint) ([]*Contact, error)
	// ListAll lists every Contact, newest first
	ListAll(ctx context.Context) ([]*Contact, error)
	// DeleteByID deletes a Contact of the owner
	DeleteByID(ctx context.Context, ownerID, id uint) error
}
