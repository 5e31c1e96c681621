package domains

import (
	"context"

	"github.com/tofunames/tofunames/internal/domain/registrar"
)

// DomainService defines the operations on an owner's domains
type DomainService interface {
	// Create registers the domain at the registrar and stores it as pending
	Create(ctx context.Context, req *CreateRequest) (*Domain, error)

	// List returns the owner's domains, newest first
	List(ctx context.Context, ownerID uint) ([]*Domain, error)

	// ListAll returns every domain, newest first
	ListAll(ctx context.Context) ([]*Domain, error)

	// GetByID retrieves one of the owner's domains
	GetByID(ctx context.Context, ownerID, id uint) (*Domain, error)

	// CheckAvailability asks the registrar whether name can be registered
	CheckAvailability(ctx context.Context, name string) (*Availability, error)

	// ImportFromRegistrar creates local rows for registrar domains not yet known
	ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error)
}

// DomainRepository defines the persistence of domains
type DomainRepository interface {
	// Create adds a new Domain to the database
	Create(ctx context.Context, domain *Domain) error
	// Update saves a modified Domain
	Update(ctx context.Context, domain *Domain) error
	// GetByID retrieves a Domain of the owner by ID
	GetByID(ctx context.Context, ownerID, id uint) (*Domain, error)
	// ExistsByName reports whether any Domain has the name
	ExistsByName(ctx context.Context, name string) (bool, error)
	// ListByOwner lists the owner's Domains, newest first
	ListByOwner(ctx context.Context, ownerID uint) ([]*Domain, error)
	// ListAll lists every Domain, newest first
	ListAll(ctx context.Context) ([]*Domain, error)
	// CountByContact counts the Domains using a contact
	CountByContact(ctx context.Context, contactID uint) (int64, error)
}
