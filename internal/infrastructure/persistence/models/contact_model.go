package models

import (
	"time"

	"github.com/tofunames/tofunames/internal/domain/contacts"
)

// ContactModel is the GORM database model for registrant contacts
type ContactModel struct {
	ID        uint       `gorm:"primaryKey"`
	OwnerID   uint       `gorm:"not null;index"`
	Owner     *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	FirstName string     `gorm:"not null;type:varchar(150)"`
	LastName  string     `gorm:"not null;type:varchar(150)"`
	Street    string     `gorm:"not null;type:varchar(150)"`
	City      string     `gorm:"not null;type:varchar(150)"`
	Postal    string     `gorm:"not null;type:varchar(150)"`
	Country   string     `gorm:"not null;type:varchar(150)"`
	Phone     string     `gorm:"not null;type:varchar(150)"`
	Email     string     `gorm:"not null;type:varchar(150)"`
	APIID     string     `gorm:"column:api_id;not null;index;type:varchar(16)"`
	APILog    *string    `gorm:"column:api_log;type:varchar(1000)"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts GORM model to domain entity
func (m *ContactModel) ToDomain() *contacts.Contact {
	return &contacts.Contact{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Street:    m.Street,
		City:      m.City,
		Postal:    m.Postal,
		Country:   m.Country,
		Phone:     m.Phone,
		Email:     m.Email,
		APIID:     m.APIID,
		APILog:    m.APILog,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactModel) FromDomain(c *contacts.Contact) {
	m.ID = c.ID
	m.OwnerID = c.OwnerID
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Street = c.Street
	m.City = c.City
	m.Postal = c.Postal
	m.Country = c.Country
	m.Phone = c.Phone
	m.Email = c.Email
	m.APIID = c.APIID
	m.APILog = c.APILog
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
