package repositories_test

import (
	"context"
	"testing"
	"time"

	"grocery-recipe/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTokenRepository(setupSQLite(t))

	blacklisted, err := repo.IsTokenBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.AddBlacklistedToken(ctx, "token-a", time.Now().Add(time.Hour).Unix()))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "token-a", time.Now().Add(time.Hour).Unix()))

	blacklisted, err = repo.IsTokenBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestCleanExpiredTokens(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTokenRepository(setupSQLite(t))

	require.NoError(t, repo.AddBlacklistedToken(ctx, "expired", time.Now().Add(-time.Minute).Unix()))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "live", time.Now().Add(time.Hour).Unix()))

	purged, err := repo.CleanExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	blacklisted, err := repo.IsTokenBlacklisted(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = repo.IsTokenBlacklisted(ctx, "live")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
