package v1

import (
	"time"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/users"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// SignupRequest creates an account
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest exchanges credentials for a bearer token
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the bearer token returned by login
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsStaff   bool       `json:"isStaff"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsStaff:   u.IsStaff,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// ContactRequest holds the registrant data of a new contact
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	Postal    string `json:"postal" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

func (r *ContactRequest) toContact(ownerID uint) *contacts.Contact {
	return &contacts.Contact{
		OwnerID:   ownerID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Street:    r.Street,
		City:      r.City,
		Postal:    r.Postal,
		Country:   r.Country,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

// ContactResponse is the view of a stored contact
type ContactResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	Postal    string    `json:"postal"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	APIID     string    `json:"apiId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newContactResponse(c *contacts.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Street:    c.Street,
		City:      c.City,
		Postal:    c.Postal,
		Country:   c.Country,
		Phone:     c.Phone,
		Email:     c.Email,
		APIID:     c.APIID,
		CreatedAt: c.CreatedAt,
	}
}

// DomainRequest registers a new domain
type DomainRequest struct {
	Name        string   `json:"name" binding:"required"`
	ContactID   uint     `json:"contactId" binding:"required"`
	Nameservers []string `json:"nameservers"`
}

// DomainResponse is the view of a stored domain
type DomainResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ContactID   uint      `json:"contactId"`
	Nameservers []string  `json:"nameservers"`
	APIID       string    `json:"apiId"`
	Pending     bool      `json:"pending"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newDomainResponse(d *domains.Domain) DomainResponse {
	nameservers := d.Nameservers
	if nameservers == nil {
		nameservers = []string{}
	}
	return DomainResponse{
		ID:          d.ID,
		Name:        d.Name,
		ContactID:   d.ContactID,
		Nameservers: nameservers,
		APIID:       d.APIID,
		Pending:     d.Pending,
		CreatedAt:   d.CreatedAt,
	}
}

// AvailabilityResponse answers a domain check
type AvailabilityResponse struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

// CheckoutResponse is the view of a checkout
type CheckoutResponse struct {
	ID          uint      `json:"id"`
	DomainID    uint      `json:"domainId"`
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCheckoutResponse(c *checkouts.Checkout) CheckoutResponse {
	return CheckoutResponse{
		ID:          c.ID,
		DomainID:    c.DomainID,
		Reference:   c.Reference,
		Status:      string(c.Status),
		AmountCents: c.AmountCents,
		Currency:    c.Currency,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
