// cmd/tofunames-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/tofunames/tofunames/internal/api/rest/v1"
	"github.com/tofunames/tofunames/internal/app"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, registry, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, registry, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	connector registrar.Connector
	services  *appServices
}

type appServices struct {
	users     users.UserService
	contacts  contacts.ContactService
	domains   domains.DomainService
	checkouts checkouts.CheckoutService
}

func (d *appDependencies) close(log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.connector.Close(ctx); err != nil {
		log.Warn("failed to close registrar session", "error", err)
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, registry prometheus.Registerer, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Initialize registrar connector
	conn, err := connector.NewRegistrarConnector(&cfg.Registrar, metrics.NewRegistrarMetrics(registry), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create registrar connector: %w", err)
	}
	log.Info("Registrar connector initialized", "provider", conn.Name())

	signer, err := auth.NewTokenSigner(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token signer: %w", err)
	}

	services, err := initializeApplicationServices(repos, conn, signer, &cfg.Checkout, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:        db,
		connector: conn,
		services:  services,
	}, nil
}

type repositories struct {
	users     users.UserRepository
	contacts  contacts.ContactRepository
	domains   domains.DomainRepository
	checkouts checkouts.CheckoutRepository
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	contactRepo, err := persistence.NewGormContactRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	domainRepo, err := persistence.NewGormDomainRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain repository: %w", err)
	}
	checkoutRepo, err := persistence.NewGormCheckoutRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout repository: %w", err)
	}

	return &repositories{
		users:     userRepo,
		contacts:  contactRepo,
		domains:   domainRepo,
		checkouts: checkoutRepo,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	repos *repositories,
	conn registrar.Connector,
	signer *auth.TokenSigner,
	checkoutSettings *config.CheckoutSettings,
	log logger.Logger,
) (*appServices, error) {
	userService, err := app.NewUserService(repos.users, signer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	contactService, err := app.NewContactService(repos.contacts, conn, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	domainService, err := app.NewDomainService(repos.domains, repos.contacts, conn, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain service: %w", err)
	}

	checkoutService, err := app.NewCheckoutService(repos.checkouts, repos.domains, checkoutSettings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		users:     userService,
		contacts:  contactService,
		domains:   domainService,
		checkouts: checkoutService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, gatherer prometheus.Gatherer, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.users,
		deps.services.contacts,
		deps.services.domains,
		deps.services.checkouts,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
