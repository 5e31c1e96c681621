package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tofunames/tofunames/internal/app"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/infrastructure/connector"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence"
	"github.com/tofunames/tofunames/internal/pkg/auth"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/logger"
	"github.com/tofunames/tofunames/internal/pkg/metrics"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the file named by the --config flag
func loadConfig(cmd *cobra.Command) (*config.CLIConfig, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	return config.InitializeCLIConfig(path)
}

// environment bundles what a command needs
type environment struct {
	cfg       *config.CLIConfig
	logger    logger.Logger
	db        *gorm.DB
	connector registrar.Connector

	users    users.UserService
	contacts contacts.ContactService
	domains  domains.DomainService
	sync     registrar.SyncService

	contactRepo contacts.ContactRepository
}

// environmentOpener builds the environment for a command; tests replace it
type environmentOpener func(cmd *cobra.Command, withRegistrar bool) (*environment, error)

// openEnvironment loads the configuration, opens the database and, when
// withRegistrar is set, connects to the registrar.
func openEnvironment(cmd *cobra.Command, withRegistrar bool) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	env := &environment{cfg: cfg, logger: log, db: db}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, env.fail(err)
	}
	contactRepo, err := persistence.NewGormContactRepository(db, log)
	if err != nil {
		return nil, env.fail(err)
	}
	domainRepo, err := persistence.NewGormDomainRepository(db, log)
	if err != nil {
		return nil, env.fail(err)
	}
	env.contactRepo = contactRepo

	// the CLI never hands out tokens, so the signing key is throwaway
	signer, err := auth.NewTokenSigner(uuid.NewString()+uuid.NewString(), time.Minute)
	if err != nil {
		return nil, env.fail(err)
	}
	if env.users, err = app.NewUserService(userRepo, signer, log); err != nil {
		return nil, env.fail(err)
	}

	if !withRegistrar {
		env.connector = readOnlyConnector{}
	} else if env.connector, err = connector.NewRegistrarConnector(&cfg.Registrar, metrics.NewRegistrarMetrics(nil), log); err != nil {
		return nil, env.fail(err)
	}

	if env.contacts, err = app.NewContactService(contactRepo, env.connector, log); err != nil {
		return nil, env.fail(err)
	}
	if env.domains, err = app.NewDomainService(domainRepo, contactRepo, env.connector, log); err != nil {
		return nil, env.fail(err)
	}
	if env.sync, err = app.NewRegistrarSyncService(env.contacts, env.domains, log); err != nil {
		return nil, env.fail(err)
	}

	return env, nil
}

func (e *environment) fail(err error) error {
	e.Close()
	return err
}

// Close releases the registrar session and the database
func (e *environment) Close() {
	if e.connector != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.connector.Close(ctx); err != nil {
			e.logger.Warn("failed to close registrar session", "error", err)
		}
	}
	if e.db != nil {
		if err := persistence.CloseDB(e.db); err != nil {
			e.logger.Warn("failed to close database", "error", err)
		}
	}
}

// ownerID resolves the --owner flag to a user id
func (e *environment) ownerID(ctx context.Context, cmd *cobra.Command) (uint, error) {
	username, err := cmd.Flags().GetString("owner")
	if err != nil {
		return 0, fmt.Errorf("invalid owner flag: %w", err)
	}
	user, err := e.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("owner %q: %w", username, err)
	}
	return user.ID, nil
}

// readOnlyConnector stands in for the registrar in commands that only read
// the local database
type readOnlyConnector struct{}

var errRegistrarDisabled = errors.New("registrar access is not enabled for this command")

func (readOnlyConnector) CreateContact(context.Context, registrar.ContactDetails) (*registrar.Result, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) RegisterDomain(context.Context, registrar.DomainRegistration) (*registrar.Result, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) ListContacts(context.Context) ([]string, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) ContactInfo(context.Context, string) (*registrar.ContactInfo, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) ListDomains(context.Context) ([]string, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) DomainInfo(context.Context, string) (*registrar.DomainInfo, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) CheckDomain(context.Context, string) (*registrar.Availability, error) {
	return nil, errRegistrarDisabled
}

func (readOnlyConnector) Name() string { return "disabled" }

func (readOnlyConnector) Close(context.Context) error { return nil }

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
