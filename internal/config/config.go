package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment    string   `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
	LogDir         string   `env:"LOG_DIR"`
	Port           int      `env:"PORT" envDefault:"8080"`
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	Version        string   `env:"APP_VERSION" envDefault:"dev"`

	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName            string        `env:"DB_NAME" envDefault:"cardheist"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// CatalogPath empty means the embedded seed catalog
	CatalogPath       string `env:"CATALOG_PATH"`
	CatalogSchemaPath string `env:"CATALOG_SCHEMA_PATH"`

	DropCooldown    time.Duration `env:"DROP_COOLDOWN" envDefault:"20s"`
	TheftCooldown   time.Duration `env:"THEFT_COOLDOWN" envDefault:"2m"`
	StarterPackSize int           `env:"STARTER_PACK_SIZE" envDefault:"5"`
	DevMode         bool          `env:"DEV_MODE" envDefault:"false"`

	NotifyWorkers     int           `env:"NOTIFY_WORKERS" envDefault:"4"`
	NotifyQueueSize   int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"256"`
	UsernameCacheSize int           `env:"USERNAME_CACHE_SIZE" envDefault:"1000"`
	UsernameCacheTTL  time.Duration `env:"USERNAME_CACHE_TTL" envDefault:"5m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads .env when present, parses the environment and validates the result
func Load() (*Config, error) {
	// real env vars win over .env; a missing file is fine
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDev reports whether the dev environment is selected
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev || c.Environment == "development"
}

// GetDatabaseURL returns the PostgreSQL connection string
func (c *Config) GetDatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}
