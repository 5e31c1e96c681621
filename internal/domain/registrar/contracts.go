package registrar

import "context"

// Connector talks to a domain registrar
type Connector interface {
	// CreateContact creates a contact and returns its registrar handle
	CreateContact(ctx context.Context, contact ContactDetails) (*Result, error)

	// RegisterDomain registers a domain for one period
	RegisterDomain(ctx context.Context, registration DomainRegistration) (*Result, error)

	// ListContacts returns the handles of all contacts on the account
	ListContacts(ctx context.Context) ([]string, error)

	// ContactInfo returns the details of the contact with the given handle
	ContactInfo(ctx context.Context, handle string) (*ContactInfo, error)

	// ListDomains returns the names of all domains on the account
	ListDomains(ctx context.Context) ([]string, error)

	// DomainInfo returns the nameservers and owner handle of a domain
	DomainInfo(ctx context.Context, name string) (*DomainInfo, error)

	// CheckDomain reports whether a domain can be registered
	CheckDomain(ctx context.Context, name string) (*Availability, error)

	// Name identifies the provider, e.g. "centralnic"
	Name() string

	// Close releases any session held with the registrar
	Close(ctx context.Context) error
}

// SyncService imports the registrar account into the local database
type SyncService interface {
	// Sync imports contacts and then domains for the owner
	Sync(ctx context.Context, ownerID uint) (contacts *ImportReport, domains *ImportReport, err error)
}
