package services_test

import (
	"context"
	"sync"
	"testing"

	"grocery-recipe/infra"
	"grocery-recipe/migrations"
	"grocery-recipe/models"
	"grocery-recipe/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.SetupSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateSQL(db))
	require.NoError(t, migrations.MigrateTokenDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fakeGenerator 登録した結果を順に返し、最後の1件は繰り返す
type fakeGenerator struct {
	mu      sync.Mutex
	results []fakeResult
	prompts []string
}

type fakeResult struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.results) == 0 {
		return "recipe", nil
	}
	r := g.results[0]
	if len(g.results) > 1 {
		g.results = g.results[1:]
	}
	return r.text, r.err
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// retryableError レート制限や5xxの応答の代わり
type retryableError struct {
	retry bool
}

func (e retryableError) Error() string   { return "upstream failed" }
func (e retryableError) Retryable() bool { return e.retry }

func seedItems(t *testing.T, repo repositories.IItemRepository, items ...models.Item) {
	t.Helper()
	for _, item := range items {
		_, err := repo.Create(context.Background(), item)
		require.NoError(t, err)
	}
}
