// Package migrations リポジトリが使うスキーマ（SQL）やインデックス（mongo）を用意する
package migrations

import (
	"context"

	"grocery-recipe/constants"
	"grocery-recipe/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

func MigrateSQL(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Item{}, &models.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	logrus.Info("Migrated items and users tables")
	return nil
}

// MigrateTokenDB トークンブラックリスト用のSQLiteデータベースのマイグレーション
func MigrateTokenDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		return errors.Wrap(err, "failed to migrate token blacklist database")
	}
	return nil
}

// MigrateMongo 一覧とログインで使うemailのインデックスを作成する。既存のものはそのまま
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{constants.CollectionItems, constants.CollectionUsers} {
		index := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1"),
		}
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return errors.Wrapf(err, "failed to create email index on %s", name)
		}
	}
	logrus.Info("Ensured mongo indexes")
	return nil
}
