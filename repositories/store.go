package repositories

import (
	"context"

	"grocery-recipe/migrations"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

// Store 1つのバックエンドのリポジトリをまとめる
type Store struct {
	Items IItemRepository
	Users IUserRepository

	ping    func(ctx context.Context) error
	close   func(ctx context.Context) error
	migrate func(ctx context.Context) error
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Items: NewItemRepository(db),
		Users: NewUserRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
		migrate: func(context.Context) error {
			return migrations.MigrateSQL(db)
		},
	}
}

func NewMongoStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		Items: NewMongoItemRepository(db),
		Users: NewMongoUserRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		migrate: func(ctx context.Context) error {
			return migrations.MigrateMongo(ctx, db)
		},
		close: client.Disconnect,
	}
}

// Ping バックエンドに接続できるか確認する
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return errors.Wrap(s.ping(ctx), "store ping failed")
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Migrate テーブル（SQL）またはインデックス（mongo）を作成する
func (s *Store) Migrate(ctx context.Context) error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(ctx)
}
