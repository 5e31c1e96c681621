//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/infrastructure/connector"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence"
	"github.com/tofunames/tofunames/internal/pkg/auth"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/metrics"
	"github.com/tofunames/tofunames/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService     users.UserService
	ContactService  contacts.ContactService
	DomainService   domains.DomainService
	CheckoutService checkouts.CheckoutService
	SyncService     registrar.SyncService

	// Infrastructure
	Registrar *testutil.FakeCentralNic
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services against a fake
// CentralNic registrar
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	fake := testutil.NewFakeCentralNic(t)

	conn, err := connector.NewCentralNicConnector(&config.CentralNicSettings{
		BaseURL:  fake.URL(),
		Username: "reseller",
		Password: "secret",
	}, 5*time.Second, metrics.NewRegistrarMetrics(prometheus.NewRegistry()), log)
	require.NoError(t, err, "Failed to create registrar connector")

	signer, err := auth.NewTokenSigner("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	userService, err := NewUserService(dbContext.UserRepo, signer, log)
	require.NoError(t, err, "Failed to create UserService")

	contactService, err := NewContactService(dbContext.ContactRepo, conn, log)
	require.NoError(t, err, "Failed to create ContactService")

	domainService, err := NewDomainService(dbContext.DomainRepo, dbContext.ContactRepo, conn, log)
	require.NoError(t, err, "Failed to create DomainService")

	checkoutService, err := NewCheckoutService(dbContext.CheckoutRepo, dbContext.DomainRepo, &config.CheckoutSettings{PriceCents: 1500, Currency: "EUR"}, log)
	require.NoError(t, err, "Failed to create CheckoutService")

	syncService, err := NewRegistrarSyncService(contactService, domainService, log)
	require.NoError(t, err, "Failed to create SyncService")

	return &TestServices{
		UserService:     userService,
		ContactService:  contactService,
		DomainService:   domainService,
		CheckoutService: checkoutService,
		SyncService:     syncService,
		Registrar:       fake,
		DBContext:       dbContext,
	}
}
