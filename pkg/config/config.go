package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "GALLEYPOS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GALLEYPOS_APP_ENV" required:"true"`
	Port         string `envconfig:"GALLEYPOS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GALLEYPOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GALLEYPOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GALLEYPOS_DB_DSN"`
	Driver string `envconfig:"GALLEYPOS_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"GALLEYPOS_DB_HOST"`
	Port     int    `envconfig:"GALLEYPOS_DB_PORT" default:"5432"`
	User     string `envconfig:"GALLEYPOS_DB_USER"`
	Password string `envconfig:"GALLEYPOS_DB_PASSWORD"`
	Name     string `envconfig:"GALLEYPOS_DB_NAME"`
	SSLMode  string `envconfig:"GALLEYPOS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GALLEYPOS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GALLEYPOS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GALLEYPOS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GALLEYPOS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		// bare file path is a valid sqlite DSN; default to an on-disk dev db
		db.DSN = "galleypos.db"
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "GALLEYPOS_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "GALLEYPOS_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "GALLEYPOS_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete, set GALLEYPOS_DB_DSN or: %s", strings.Join(missing, ", "))
	}

	db.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		url.QueryEscape(db.Name),
		db.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"GALLEYPOS_REDIS_URL"`
	Address      string        `envconfig:"GALLEYPOS_REDIS_ADDR"`
	Password     string        `envconfig:"GALLEYPOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"GALLEYPOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GALLEYPOS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GALLEYPOS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GALLEYPOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GALLEYPOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GALLEYPOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API
// degrades to non-idempotent tender submission without one.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// CatalogConfig bounds the randomized mock catalog used for reseeding.
type CatalogConfig struct {
	SeedMinProducts int     `envconfig:"GALLEYPOS_CATALOG_SEED_MIN_PRODUCTS" default:"7"`
	SeedMaxProducts int     `envconfig:"GALLEYPOS_CATALOG_SEED_MAX_PRODUCTS" default:"20"`
	SeedMaxStock    int     `envconfig:"GALLEYPOS_CATALOG_SEED_MAX_STOCK" default:"15"`
	USDRate         float64 `envconfig:"GALLEYPOS_CATALOG_USD_RATE" default:"1.17"`
	GBPRate         float64 `envconfig:"GALLEYPOS_CATALOG_GBP_RATE" default:"0.87"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GALLEYPOS_AUTO_MIGRATE" default:"false"`
	AutoSeed    bool `envconfig:"GALLEYPOS_AUTO_SEED" default:"false"`
}
