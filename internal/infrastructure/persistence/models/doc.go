// Package models holds the GORM table definitions for users, contacts,
// domains and checkouts together with their mapping to domain entities.
package models
