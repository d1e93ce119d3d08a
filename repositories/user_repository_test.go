package repositories_test

import (
	"context"
	"testing"

	"grocery-recipe/models"
	"grocery-recipe/repositories"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndFind(t *testing.T) {
	backends(t, func(t *testing.T, store *repositories.Store) {
		ctx := context.Background()

		created, err := store.Users.CreateUser(ctx, models.User{
			Email:    "alice@example.com",
			Password: "hash",
			Profile:  map[string]interface{}{"name": "Alice", "household": "Flat 4"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		// 重複したメールアドレスも登録できる
		_, err = store.Users.CreateUser(ctx, models.User{Email: "alice@example.com", Password: "other"})
		require.NoError(t, err)

		users, err := store.Users.FindUsersByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Len(t, users, 2)

		found, err := store.Users.FindUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice@example.com", found.Email)
		assert.Equal(t, "hash", found.Password)
		assert.Equal(t, "Alice", found.Profile["name"])
		assert.Equal(t, "Flat 4", found.Profile["household"])

		missing, err := store.Users.FindUserByID(ctx, "64b7f0c2e1d3a4b5c6d7e8f9")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestUserCreateRequiresCredentials(t *testing.T) {
	backends(t, func(t *testing.T, store *repositories.Store) {
		_, err := store.Users.CreateUser(context.Background(), models.User{Email: "", Password: "hash"})
		assert.True(t, errors.Is(err, models.ErrValidation))

		_, err = store.Users.CreateUser(context.Background(), models.User{Email: "a@example.com"})
		assert.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestStorePing(t *testing.T) {
	backends(t, func(t *testing.T, store *repositories.Store) {
		assert.NoError(t, store.Ping(context.Background()))
	})
}

func TestStoreMigrateIsRepeatable(t *testing.T) {
	backends(t, func(t *testing.T, store *repositories.Store) {
		assert.NoError(t, store.Migrate(context.Background()))
		assert.NoError(t, store.Migrate(context.Background()))
	})
}
