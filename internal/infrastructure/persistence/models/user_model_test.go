//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tofunames/tofunames/internal/domain/users"
)

func TestUserModel_RoundTrip(t *testing.T) {
	login := time.Now().UTC()
	user := &users.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsStaff:      true,
		IsActive:     true,
		LastLogin:    &login,
		CreatedAt:    time.Now(),
	}

	model := &UserModel{}
	model.FromDomain(user)

	assert.Equal(t, "users", model.TableName())
	assert.Equal(t, user, model.ToDomain())
}
