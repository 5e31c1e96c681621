//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence/models"
	"github.com/tofunames/tofunames/internal/pkg/config"
)

func TestDomainSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	owner := CreateTestUser(t, ctx, "alice")
	contact := CreateTestContact(t, ctx, owner.ID, "P-ACX100")

	domain := CreateTestDomain(t, ctx, owner.ID, contact.ID, "tofunames.com")

	got, err := ctx.DomainRepo.GetByID(context.Background(), owner.ID, domain.ID)
	require.NoError(t, err)
	assert.Equal(t, "tofunames.com", got.Name)
	assert.Equal(t, []string{"ns1.dnsimple.com", "ns2.dnsimple-edge.net"}, got.Nameservers)
	assert.True(t, got.Pending)

	var model models.DomainModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", domain.ID).Error)
	assert.Equal(t, "", model.Nameserver2)
}

func TestDomainSqliteRepository_Duplicate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	owner := CreateTestUser(t, ctx, "alice")
	contact := CreateTestContact(t, ctx, owner.ID, "P-ACX100")
	CreateTestDomain(t, ctx, owner.ID, contact.ID, "tofunames.com")

	dup := &domains.Domain{OwnerID: owner.ID, ContactID: contact.ID, Name: "tofunames.com", Pending: true}
	err := ctx.DomainRepo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, domains.ErrAlreadyExists)

	exists, err := ctx.DomainRepo.ExistsByName(context.Background(), "tofunames.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.DomainRepo.ExistsByName(context.Background(), "oddbroccoli.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDomainSqliteRepository_InvalidName(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	owner := CreateTestUser(t, ctx, "alice")
	contact := CreateTestContact(t, ctx, owner.ID, "P-ACX100")

	err := ctx.DomainRepo.Create(context.Background(), &domains.Domain{OwnerID: owner.ID, ContactID: contact.ID, Name: "not a domain"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestDomainSqliteRepository_OwnerScopingAndLists(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	alice := CreateTestUser(t, ctx, "alice")
	bob := CreateTestUser(t, ctx, "bob")
	aliceContact := CreateTestContact(t, ctx, alice.ID, "P-A")
	bobContact := CreateTestContact(t, ctx, bob.ID, "P-B")

	first := CreateTestDomain(t, ctx, alice.ID, aliceContact.ID, "tofunames.com")
	second := CreateTestDomain(t, ctx, alice.ID, aliceContact.ID, "oddbroccoli.com")
	CreateTestDomain(t, ctx, bob.ID, bobContact.ID, "example.org")

	_, err := ctx.DomainRepo.GetByID(context.Background(), bob.ID, first.ID)
	assert.ErrorIs(t, err, domains.ErrNotFound)

	list, err := ctx.DomainRepo.ListByOwner(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	all, err := ctx.DomainRepo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	count, err := ctx.DomainRepo.CountByContact(context.Background(), aliceContact.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDomainSqliteRepository_Update(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	owner := CreateTestUser(t, ctx, "alice")
	contact := CreateTestContact(t, ctx, owner.ID, "P-ACX100")
	domain := CreateTestDomain(t, ctx, owner.ID, contact.ID, "tofunames.com")

	domain.Pending = false
	domain.Nameservers = []string{"ns1.example.net"}
	require.NoError(t, ctx.DomainRepo.Update(context.Background(), domain))

	got, err := ctx.DomainRepo.GetByID(context.Background(), owner.ID, domain.ID)
	require.NoError(t, err)
	assert.False(t, got.Pending)
	assert.Equal(t, []string{"ns1.example.net"}, got.Nameservers)
}
