package commands

import (
	"fmt"

	"github.com/tofunames/tofunames/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler creates or upgrades the database schema
type MigrateCommandHandler struct{}

// NewMigrateCommandHandler initializes a MigrateCommandHandler
func NewMigrateCommandHandler() *MigrateCommandHandler {
	return &MigrateCommandHandler{}
}

// MigrateCmd applies the schema to the configured database
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		_ = persistence.CloseDB(db)
	}()

	if err := persistence.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("Database migrations completed successfully", "type", cfg.Database.Type)
	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler := NewMigrateCommandHandler()

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
