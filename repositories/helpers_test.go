package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"grocery-recipe/infra"
	"grocery-recipe/migrations"
	"grocery-recipe/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
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

// setupMongo MONGO_TEST_URIが無ければスキップする
func setupMongo(t *testing.T) *repositories.Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	require.NoError(t, err)

	name := "grocery_test_" + uuid.NewString()[:8]
	require.NoError(t, migrations.MigrateMongo(ctx, client.Database(name)))

	t.Cleanup(func() {
		ctx := context.Background()
		client.Database(name).Drop(ctx)
		client.Disconnect(ctx)
	})
	return repositories.NewMongoStore(client, name)
}

// backends 利用できるすべてのストアでfnを実行する
func backends(t *testing.T, fn func(t *testing.T, store *repositories.Store)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, repositories.NewGormStore(setupSQLite(t)))
	})
	t.Run("mongo", func(t *testing.T) {
		fn(t, setupMongo(t))
	})
}
