// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by TOFUNAMES_* environment
// variables (optionally sourced from a .env file) and validated before use.
// Every settings struct carries its own Validate method.
package config
