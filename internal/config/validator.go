package config

import (
	"fmt"
	"strings"
)

// Validate checks ranges and required values
func (c *Config) Validate() error {
	if c.APIKey == "" && !c.IsDev() {
		return fmt.Errorf(ErrFmtAPIKeyRequired, EnvironmentDev)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf(ErrFmtInvalidPort, c.Port)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf(ErrFmtInvalidLogLevel, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf(ErrFmtInvalidLogFormat, c.LogFormat)
	}

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("%s", ErrMsgDatabaseIncomplete)
		}
		if c.DBMaxConns <= 0 {
			return fmt.Errorf(ErrFmtNonPositive, "DB_MAX_CONNS", c.DBMaxConns)
		}
	default:
		return fmt.Errorf(ErrFmtInvalidDriver, c.StorageDriver, StorageDriverPostgres, StorageDriverMemory)
	}

	if c.DropCooldown <= 0 {
		return fmt.Errorf(ErrFmtNonPositive, "DROP_COOLDOWN", c.DropCooldown)
	}
	if c.TheftCooldown <= 0 {
		return fmt.Errorf(ErrFmtNonPositive, "THEFT_COOLDOWN", c.TheftCooldown)
	}
	if c.StarterPackSize < 0 {
		return fmt.Errorf(ErrFmtNegative, "STARTER_PACK_SIZE", c.StarterPackSize)
	}
	if c.NotifyWorkers <= 0 {
		return fmt.Errorf(ErrFmtNonPositive, "NOTIFY_WORKERS", c.NotifyWorkers)
	}
	if c.NotifyQueueSize <= 0 {
		return fmt.Errorf(ErrFmtNonPositive, "NOTIFY_QUEUE_SIZE", c.NotifyQueueSize)
	}
	return nil
}

// Warnings lists non-fatal configuration problems worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.IsDev() {
		if c.DevMode {
			warnings = append(warnings, WarnMsgDevMode)
		}
		return warnings
	}
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.DevMode {
		warnings = append(warnings, WarnMsgDevMode)
	}
	return warnings
}
