//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/testutil"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	UserRepo     users.UserRepository
	ContactRepo  contacts.ContactRepository
	DomainRepo   domains.DomainRepository
	CheckoutRepo checkouts.CheckoutRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	contactRepo, err := NewGormContactRepository(db, log)
	require.NoError(t, err)
	domainRepo, err := NewGormDomainRepository(db, log)
	require.NoError(t, err)
	checkoutRepo, err := NewGormCheckoutRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:           db,
		UserRepo:     userRepo,
		ContactRepo:  contactRepo,
		DomainRepo:   domainRepo,
		CheckoutRepo: checkoutRepo,
	}
}

// CreateTestUser stores a user with the given username
func CreateTestUser(t *testing.T, ctx *TestContext, username string) *users.User {
	t.Helper()

	user := &users.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	}
	require.NoError(t, ctx.UserRepo.Create(t.Context(), user))
	return user
}

// CreateTestContact stores a registered contact for the owner
func CreateTestContact(t *testing.T, ctx *TestContext, ownerID uint, apiID string) *contacts.Contact {
	t.Helper()

	contact := &contacts.Contact{
		OwnerID:   ownerID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Street:    "12 St James's Square",
		City:      "London",
		Postal:    "SW1Y 4JH",
		Country:   "GB",
		Phone:     "+44.2070000000",
		Email:     "ada@example.com",
		APIID:     apiID,
	}
	require.NoError(t, ctx.ContactRepo.Create(t.Context(), contact))
	return contact
}

// CreateTestDomain stores a pending domain for the owner
func CreateTestDomain(t *testing.T, ctx *TestContext, ownerID, contactID uint, name string) *domains.Domain {
	t.Helper()

	domain := &domains.Domain{
		OwnerID:     ownerID,
		ContactID:   contactID,
		Name:        name,
		Nameservers: []string{"ns1.dnsimple.com", "ns2.dnsimple-edge.net"},
		Pending:     true,
	}
	require.NoError(t, ctx.DomainRepo.Create(t.Context(), domain))
	return domain
}

// CreateTestCheckout stores a pending checkout for the domain
func CreateTestCheckout(t *testing.T, ctx *TestContext, domainID uint) *checkouts.Checkout {
	t.Helper()

	checkout := &checkouts.Checkout{
		DomainID:    domainID,
		Reference:   uuid.NewString(),
		Status:      checkouts.StatusPending,
		AmountCents: 1500,
		Currency:    "EUR",
	}
	require.NoError(t, ctx.CheckoutRepo.Create(t.Context(), checkout))
	return checkout
}
