package models

import (
	"time"

	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
)

// DomainModel is the GORM database model for domains.
// Nameservers are stored in four fixed columns.
type DomainModel struct {
	ID          uint          `gorm:"primaryKey"`
	OwnerID     uint          `gorm:"not null;index"`
	Owner       *UserModel    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	ContactID   uint          `gorm:"not null;index"`
	Contact     *ContactModel `gorm:"foreignKey:ContactID;constraint:OnDelete:RESTRICT"`
	Name        string        `gorm:"column:domain_name;not null;uniqueIndex;type:varchar(253)"`
	Nameserver0 string        `gorm:"not null;default:'';type:varchar(253)"`
	Nameserver1 string        `gorm:"not null;default:'';type:varchar(253)"`
	Nameserver2 string        `gorm:"not null;default:'';type:varchar(253)"`
	Nameserver3 string        `gorm:"not null;default:'';type:varchar(253)"`
	APIID       string        `gorm:"column:api_id;not null;type:varchar(255)"`
	APILog      *string       `gorm:"column:api_log;type:varchar(1000)"`
	Pending     bool          `gorm:"not null;index"`
	CreatedAt   time.Time     `gorm:"not null"`
	UpdatedAt   time.Time     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DomainModel) TableName() string {
	return "domains"
}

// ToDomain converts GORM model to domain entity. Empty nameserver slots are dropped.
func (m *DomainModel) ToDomain() *domains.Domain {
	var nameservers []string
	for _, ns := range []string{m.Nameserver0, m.Nameserver1, m.Nameserver2, m.Nameserver3} {
		if ns != "" {
			nameservers = append(nameservers, ns)
		}
	}

	return &domains.Domain{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		ContactID:   m.ContactID,
		Name:        m.Name,
		Nameservers: nameservers,
		APIID:       m.APIID,
		APILog:      m.APILog,
		Pending:     m.Pending,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Nameservers beyond the
// fourth are not stored.
func (m *DomainModel) FromDomain(d *domains.Domain) {
	var slots [registrar.MaxNameservers]string
	copy(slots[:], d.Nameservers)

	m.ID = d.ID
	m.OwnerID = d.OwnerID
	m.ContactID = d.ContactID
	m.Name = d.Name
	m.Nameserver0 = slots[0]
	m.Nameserver1 = slots[1]
	m.Nameserver2 = slots[2]
	m.Nameserver3 = slots[3]
	m.APIID = d.APIID
	m.APILog = d.APILog
	m.Pending = d.Pending
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
}
