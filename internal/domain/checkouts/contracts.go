package checkouts

import "context"

// CheckoutService defines the payment flow for pending domains
type CheckoutService interface {
	// Start opens a checkout for one of the owner's pending domains
	Start(ctx context.Context, ownerID, domainID uint) (*Checkout, error)

	// Succeed marks the checkout paid and activates its domain
	Succeed(ctx context.Context, ownerID, checkoutID uint) (*Checkout, error)

	// Fail marks the checkout failed; the domain stays pending
	Fail(ctx context.Context, ownerID, checkoutID uint) (*Checkout, error)

	// List returns the owner's checkouts, newest first
	List(ctx context.Context, ownerID uint) ([]*Checkout, error)
}

// CheckoutRepository defines the persistence of checkouts
type CheckoutRepository interface {
	// Create adds a new Checkout to the database
	Create(ctx context.Context, checkout *Checkout) error
	// GetByID retrieves a Checkout whose domain belongs to the owner
	GetByID(ctx context.Context, ownerID, id uint) (*Checkout, error)
	// ListByOwner lists Checkouts of the owner's domains, newest first
	ListByOwner(ctx context.Context, ownerID uint) ([]*Checkout, error)
	// UpdateStatus saves the checkout status
	UpdateStatus(ctx context.Context, checkout *Checkout) error
	// MarkSucceeded saves the succeeded checkout and clears its domain's
	// pending flag in one transaction
	MarkSucceeded(ctx context.Context, checkout *Checkout) error
}
