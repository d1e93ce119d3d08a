// Package config 起動時に一度だけ環境変数から設定を読み込む
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config Loadで作成し、以降は変更しない
type Config struct {
	Env  string
	Port int

	DBDriver      string
	MongoURI      string
	MongoDatabase string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	SQLitePath    string
	TokenDBPath   string
	AutoMigrate   bool

	SecretKey            string
	TokenTTL             time.Duration
	TokenCleanupInterval time.Duration

	AIAPIKey       string
	AIBaseURL      string
	AIModel        string
	AITimeout      time.Duration
	AIMaxRetries   int
	AIRetryDelay   time.Duration
	RecipeCacheTTL time.Duration

	LogLevel  string
	LogFormat string
	LogFile   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// IsProduction ENV=prodかどうか
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

// Addr HTTPサーバーの待ち受けアドレス
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load 環境変数からConfigを作る。.envを反映させるため先にinfra.Initializeを呼ぶこと
func Load() (*Config, error) {
	var err error
	cfg := &Config{
		Env:           os.Getenv("ENV"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "recipe"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "5432"),
		SQLitePath:    getEnv("SQLITE_PATH", ":memory:"),
		TokenDBPath:   getEnv("TOKEN_DB_PATH", "token_blacklist.db"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIBaseURL:     strings.TrimRight(getEnv("AI_BASE_URL", "https://openrouter.ai/api/v1"), "/"),
		AIModel:       getEnv("AI_MODEL", "gpt-4o"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	if cfg.Port, err = getInt("PORT", 3000); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = getBool("AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.AIMaxRetries, err = getInt("AI_MAX_RETRIES", 3); err != nil {
		return nil, err
	}

	durations := []struct {
		key    string
		def    time.Duration
		target *time.Duration
	}{
		{"TOKEN_TTL", time.Hour, &cfg.TokenTTL},
		{"TOKEN_CLEANUP_INTERVAL", 10 * time.Minute, &cfg.TokenCleanupInterval},
		{"AI_TIMEOUT", 30 * time.Second, &cfg.AITimeout},
		{"AI_RETRY_DELAY", time.Second, &cfg.AIRetryDelay},
		{"RECIPE_CACHE_TTL", 0, &cfg.RecipeCacheTTL},
		{"READ_TIMEOUT", 15 * time.Second, &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", 2 * time.Minute, &cfg.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", 5 * time.Second, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if *d.target, err = getDuration(d.key, d.def); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when DB_DRIVER=mongo")
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required when DB_DRIVER=postgres")
		}
	case DriverSQLite:
	default:
		return errors.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid PORT %d", c.Port)
	}
	if c.AIMaxRetries < 1 {
		return errors.New("AI_MAX_RETRIES must be at least 1")
	}
	for name, d := range map[string]time.Duration{
		"TOKEN_TTL":              c.TokenTTL,
		"TOKEN_CLEANUP_INTERVAL": c.TokenCleanupInterval,
		"AI_TIMEOUT":             c.AITimeout,
		"READ_TIMEOUT":           c.ReadTimeout,
		"WRITE_TIMEOUT":          c.WriteTimeout,
		"SHUTDOWN_TIMEOUT":       c.ShutdownTimeout,
	} {
		if d <= 0 {
			return errors.Errorf("%s must be positive", name)
		}
	}
	if c.AIRetryDelay < 0 || c.RecipeCacheTTL < 0 {
		return errors.New("AI_RETRY_DELAY and RECIPE_CACHE_TTL must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s", key)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}
