package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedVars = []string{
	"ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "PORT", "API_KEY", "TRUSTED_PROXIES",
	"STORAGE_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_CONNS", "DROP_COOLDOWN", "THEFT_COOLDOWN", "STARTER_PACK_SIZE", "DEV_MODE",
	"NOTIFY_WORKERS", "NOTIFY_QUEUE_SIZE", "USERNAME_CACHE_SIZE", "USERNAME_CACHE_TTL",
}

// clearEnvVars blanks every managed variable for the test; an empty value
// falls back to envDefault
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range managedVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults in dev", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, EnvironmentDev, cfg.Environment)
		assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
		assert.Equal(t, 20*time.Second, cfg.DropCooldown)
		assert.Equal(t, 2*time.Minute, cfg.TheftCooldown)
		assert.Equal(t, 5, cfg.StarterPackSize)
		assert.False(t, cfg.DevMode)
	})

	t.Run("values from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", EnvironmentProduction)
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
		t.Setenv("THEFT_COOLDOWN", "5m")
		t.Setenv("STARTER_PACK_SIZE", "10")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.0.0/16")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
		assert.Equal(t, 5*time.Minute, cfg.TheftCooldown)
		assert.Equal(t, 10, cfg.StarterPackSize)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.0.0/16"}, cfg.TrustedProxies)
	})

	t.Run("API_KEY required outside dev", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", EnvironmentProduction)

		cfg, err := Load()
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("unparsable PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgParseEnv)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Environment: EnvironmentDev, LogLevel: "info", LogFormat: "text", Port: 8080,
			StorageDriver: StorageDriverPostgres, DBHost: "localhost", DBPort: "5432", DBUser: "u", DBName: "d",
			DBMaxConns: 5, DropCooldown: time.Second, TheftCooldown: time.Second,
			StarterPackSize: 5, NotifyWorkers: 1, NotifyQueueSize: 1,
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port out of range", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"bad driver", func(c *Config) { c.StorageDriver = "sqlite" }, "STORAGE_DRIVER"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"zero drop cooldown", func(c *Config) { c.DropCooldown = 0 }, "DROP_COOLDOWN"},
		{"negative starter pack", func(c *Config) { c.StarterPackSize = -1 }, "STARTER_PACK_SIZE"},
		{"no workers", func(c *Config) { c.NotifyWorkers = 0 }, "NOTIFY_WORKERS"},
		{"missing db host", func(c *Config) { c.DBHost = "" }, "DB_HOST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("memory driver ignores db settings", func(t *testing.T) {
		cfg := valid()
		cfg.StorageDriver = StorageDriverMemory
		cfg.DBHost = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := Config{DBUser: "card", DBPassword: "p@ss/word", DBHost: "db", DBPort: "5433", DBName: "heist", DBSSLMode: "require"}
	assert.Equal(t, "postgres://card:p%40ss%2Fword@db:5433/heist?sslmode=require", cfg.GetDatabaseURL())
}

func TestWarnings(t *testing.T) {
	cfg := Config{Environment: EnvironmentProduction, DBPassword: ExampleDBPassword, APIKey: ExampleAPIKey}
	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")

	dev := Config{Environment: EnvironmentDev, DBPassword: ExampleDBPassword, DevMode: true}
	assert.Equal(t, []string{WarnMsgDevMode}, dev.Warnings())
}
