// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store users, registrant contacts,
// domains and checkouts in PostgreSQL or SQLite.
package persistence
