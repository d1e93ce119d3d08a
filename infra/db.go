package infra

import (
	"fmt"
	"strings"
	"time"

	"grocery-recipe/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// SetupDB DB_DRIVERがpostgresならPostgreSQL、sqliteならSQLiteに接続する
func SetupDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if cfg.IsProduction() {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to postgres")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, errors.Wrap(err, "failed to ping postgres")
		}
		logrus.WithFields(logrus.Fields{"host": cfg.DBHost, "dbname": cfg.DBName}).Info("Setup postgres database")
		return db, nil
	case config.DriverSQLite:
		return SetupSQLite(cfg.SQLitePath)
	default:
		return nil, errors.Errorf("driver %q is not a SQL driver", cfg.DBDriver)
	}
}

// SetupSQLite SQLiteを開く。インメモリの場合は接続ごとに別のDBになるので接続を1つに固定する
func SetupSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	logrus.WithField("path", path).Info("Setup sqlite database")
	return db, nil
}

// SetupTokenDB トークンブラックリスト用のSQLiteデータベース接続を設定
func SetupTokenDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := SetupSQLite(cfg.TokenDBPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to token blacklist database")
	}
	return db, nil
}
