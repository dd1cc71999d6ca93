package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/validator"
	"github.com/garrettladley/swimlight/internal/xslog"
)

type CacheBackend string

const (
	CacheFile   CacheBackend = "file"
	CacheRedis  CacheBackend = "redis"
	CacheMemory CacheBackend = "memory"
)

type Source string

const (
	SourceSQLite   Source = "sqlite"
	SourcePostgres Source = "postgres"
)

type Config struct {
	MaxHeartRate int    `env:"SWIMLIGHT_MAX_HEART_RATE" envDefault:"190"`
	Timezone     string `env:"SWIMLIGHT_TIMEZONE" envDefault:"Local"`
	// DBPath and CachePath default to files under the app directory when empty.
	DBPath    string       `env:"SWIMLIGHT_DB_PATH"`
	Cache     CacheBackend `env:"SWIMLIGHT_CACHE" envDefault:"file"`
	CachePath string       `env:"SWIMLIGHT_CACHE_PATH"`
	Source    Source       `env:"SWIMLIGHT_SOURCE" envDefault:"sqlite"`

	RedisURL    string `env:"REDIS_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	FetchAttempts uint          `env:"SWIMLIGHT_FETCH_ATTEMPTS" envDefault:"3"`
	FetchTimeout  time.Duration `env:"SWIMLIGHT_FETCH_TIMEOUT" envDefault:"10s"`

	LogLevel xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

var _ validator.Validator = Config{}

func (c Config) Validate() map[string]string {
	errs := make(map[string]string)
	if c.MaxHeartRate < 1 || c.MaxHeartRate > 250 {
		errs["SWIMLIGHT_MAX_HEART_RATE"] = "must be between 1 and 250"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs["SWIMLIGHT_TIMEZONE"] = err.Error()
	}
	switch c.Cache {
	case CacheFile, CacheMemory:
	case CacheRedis:
		if c.RedisURL == "" {
			errs["REDIS_URL"] = "required when SWIMLIGHT_CACHE=redis"
		}
	default:
		errs["SWIMLIGHT_CACHE"] = fmt.Sprintf("unknown backend %q (valid: file, redis, memory)", c.Cache)
	}
	switch c.Source {
	case SourceSQLite:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			errs["DATABASE_URL"] = "required when SWIMLIGHT_SOURCE=postgres"
		}
	default:
		errs["SWIMLIGHT_SOURCE"] = fmt.Sprintf("unknown source %q (valid: sqlite, postgres)", c.Source)
	}
	if c.FetchAttempts == 0 {
		errs["SWIMLIGHT_FETCH_ATTEMPTS"] = "must be at least 1"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Location resolves Timezone. Call after Validate.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if verr := validator.Validate(cfg); verr != nil {
		return Config{}, verr
	}
	return cfg, nil
}

// Default is the configuration with every default applied, for tests and
// for commands that run before the environment is loaded.
func Default() Config {
	return Config{
		MaxHeartRate:  heartrate.DefaultMaxHeartRate,
		Timezone:      "Local",
		Cache:         CacheFile,
		Source:        SourceSQLite,
		FetchAttempts: 3,
		FetchTimeout:  10 * time.Second,
		LogLevel:      xslog.Default,
	}
}
