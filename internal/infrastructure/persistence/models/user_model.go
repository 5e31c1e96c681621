package models

import (
	"time"

	"github.com/tofunames/tofunames/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Email        string     `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash string     `gorm:"not null;type:varchar(255)"`
	IsStaff      bool       `gorm:"not null"`
	IsActive     bool       `gorm:"not null"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsStaff:      m.IsStaff,
		IsActive:     m.IsActive,
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.IsStaff = u.IsStaff
	m.IsActive = u.IsActive
	m.LastLogin = u.LastLogin
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
