package main

import (
	"context"
	"os"

	"grocery-recipe/config"
	"grocery-recipe/infra"
	"grocery-recipe/migrations"
	"grocery-recipe/repositories"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	root := &cobra.Command{
		Use:          "grocery-recipe",
		Short:        "Grocery list and recipe suggestion API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(serveCmd, migrateCmd)

	if err := root.Execute(); err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and indexes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, tokenDB, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())
		defer closeSQL(tokenDB)

		return migrate(ctx, store, tokenDB)
	},
}

// loadConfig .envの読み込み、設定の検証、ロガーの設定をまとめて行う
func loadConfig() (*config.Config, error) {
	infra.Initialize()

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if err := infra.SetupLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore 設定されたストアとトークンブラックリスト用DBを開く
func openStore(ctx context.Context, cfg *config.Config) (*repositories.Store, *gorm.DB, error) {
	var store *repositories.Store
	if cfg.DBDriver == config.DriverMongo {
		client, err := infra.SetupMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store = repositories.NewMongoStore(client, cfg.MongoDatabase)
	} else {
		db, err := infra.SetupDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		store = repositories.NewGormStore(db)
	}

	tokenDB, err := infra.SetupTokenDB(cfg)
	if err != nil {
		store.Close(context.Background())
		return nil, nil, err
	}
	return store, tokenDB, nil
}

func migrate(ctx context.Context, store *repositories.Store, tokenDB *gorm.DB) error {
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	return migrations.MigrateTokenDB(tokenDB)
}

func closeSQL(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
