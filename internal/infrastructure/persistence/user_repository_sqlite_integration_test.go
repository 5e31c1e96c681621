//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence/models"
	"github.com/tofunames/tofunames/internal/pkg/config"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx, "alice")
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	var model models.UserModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", user.ID).Error)
	assert.Equal(t, "alice", model.Username)
	assert.True(t, model.IsActive)
	assert.False(t, model.IsStaff)
}

func TestUserSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.Create(context.Background(), &users.User{Username: "Bad Name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_Create_DuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestUser(t, ctx, "alice")

	dup := &users.User{Username: "alice", Email: "other@example.com", PasswordHash: "x", IsActive: true}
	err := ctx.UserRepo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
}

func TestUserSqliteRepository_Lookups(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "alice")

	byID, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := ctx.UserRepo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := ctx.UserRepo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserSqliteRepository_UpdateAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	alice := CreateTestUser(t, ctx, "alice")
	CreateTestUser(t, ctx, "bob")

	now := time.Now().UTC().Truncate(time.Second)
	alice.LastLogin = &now
	alice.IsStaff = true
	require.NoError(t, ctx.UserRepo.Update(context.Background(), alice))

	got, err := ctx.UserRepo.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, got.LastLogin.Equal(now))
	assert.True(t, got.IsStaff)

	list, err := ctx.UserRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].Username)
}
