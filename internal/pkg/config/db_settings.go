package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Supported database backends
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Name ends up in a CREATE DATABASE statement, so it is restricted to identifiers.
var dbNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DatabaseSettings describes how to reach the relational store.
// For postgres, Name is the database created (if missing) and connected to;
// for sqlite, DSN is a file path or ":memory:".
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres"`
	Name string `mapstructure:"name" validate:"required_if=Type postgres"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Name != "" && !dbNamePattern.MatchString(s.Name) {
		return fmt.Errorf("database name %q must be a plain identifier", s.Name)
	}
	return nil
}
