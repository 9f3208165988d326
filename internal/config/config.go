package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	SaveBackend string        `env:"LINEUP_SAVE_BACKEND" envDefault:"file"`
	SaveSlot    string        `env:"LINEUP_SAVE_SLOT" envDefault:"record.json"`
	SaveDir     string        `env:"LINEUP_SAVE_DIR"`
	SaveTTL     time.Duration `env:"LINEUP_SAVE_TTL" envDefault:"0s"`

	SQLitePath           string `env:"LINEUP_SQLITE_PATH" envDefault:"lineup.db"`
	DatabaseURL          string `env:"DATABASE_URL"`
	DBMaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	DBMaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetimeMin int    `env:"DB_CONN_MAX_LIFETIME_MINUTES" envDefault:"5"`

	RedisURL      string `env:"REDIS_URL" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DefaultRows int   `env:"LINEUP_ROWS" envDefault:"6"`
	DefaultCols int   `env:"LINEUP_COLS" envDefault:"7"`
	Seed        int64 `env:"LINEUP_SEED" envDefault:"0"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// LoadDotEnv reads the first .env file found. A missing file is not an error.
func LoadDotEnv(paths ...string) bool {
	if len(paths) == 0 {
		paths = []string{".env", "../.env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return true
		}
	}
	return false
}

// LoadConfig parses the environment into a validated Config.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.SaveBackend = strings.ToLower(strings.TrimSpace(c.SaveBackend))
	switch c.SaveBackend {
	case BackendFile, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres save backend")
		}
	default:
		return errors.Errorf("unknown save backend %q", c.SaveBackend)
	}

	if strings.TrimSpace(c.SaveSlot) == "" {
		return errors.New("LINEUP_SAVE_SLOT must not be empty")
	}
	if c.DefaultRows < 1 || c.DefaultCols < 1 {
		return errors.Errorf("default grid %dx%d must be positive", c.DefaultRows, c.DefaultCols)
	}
	return nil
}
