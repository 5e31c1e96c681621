// Package main is the entry point for the tofunames-cli application.
// It registers the administration sub-commands (migrate, createsuperuser,
// listings, registrar import and availability checks) and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tofunames/tofunames/cmd/tofunames-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "tofunames-cli",
		Short: "Administration tool for tofunames",
		Long: `tofunames-cli manages the tofunames database and registrar account.

Configuration is read from the YAML file given with --config (default
$CONFIG_PATH or configs/cli-app.yaml). Every key can be overridden with a
TOFUNAMES_ prefixed environment variable, e.g. TOFUNAMES_DATABASE_DSN.
A .env file in the working directory is loaded first.`,
		SilenceUsage: true,
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/cli-app.yaml"
	}
	rootCmd.PersistentFlags().String("config", defaultConfig, "Path to the configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitListCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize list commands: %w", err)
	}

	if err := commands.InitRegistrarCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize registrar commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
