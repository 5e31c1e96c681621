package models

import (
	"time"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
)

// CheckoutModel is the GORM database model for checkouts
type CheckoutModel struct {
	ID          uint         `gorm:"primaryKey"`
	DomainID    uint         `gorm:"not null;index"`
	Domain      *DomainModel `gorm:"foreignKey:DomainID;constraint:OnDelete:CASCADE"`
	Reference   string       `gorm:"not null;uniqueIndex;type:varchar(36)"`
	Status      string       `gorm:"not null;type:varchar(16)"`
	AmountCents int64        `gorm:"not null"`
	Currency    string       `gorm:"not null;type:varchar(3)"`
	CreatedAt   time.Time    `gorm:"not null"`
	UpdatedAt   time.Time    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CheckoutModel) TableName() string {
	return "checkouts"
}

// ToDomain converts GORM model to domain entity
func (m *CheckoutModel) ToDomain() *checkouts.Checkout {
	return &checkouts.Checkout{
		ID:          m.ID,
		DomainID:    m.DomainID,
		Reference:   m.Reference,
		Status:      checkouts.Status(m.Status),
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CheckoutModel) FromDomain(c *checkouts.Checkout) {
	m.ID = c.ID
	m.DomainID = c.DomainID
	m.Reference = c.Reference
	m.Status = string(c.Status)
	m.AmountCents = c.AmountCents
	m.Currency = c.Currency
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
