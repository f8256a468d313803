package config

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Example values shipped in .env.example; using them outside dev draws a warning
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv           = "failed to parse environment"
	ErrFmtAPIKeyRequired     = "API_KEY environment variable must be set for security outside %s"
	ErrFmtInvalidPort        = "invalid PORT value: %d"
	ErrFmtInvalidDriver      = "invalid STORAGE_DRIVER %q (want %s or %s)"
	ErrFmtInvalidLogFormat   = "invalid LOG_FORMAT %q (want text or json)"
	ErrFmtInvalidLogLevel    = "invalid LOG_LEVEL %q"
	ErrFmtNonPositive        = "%s must be positive, got %v"
	ErrFmtNegative           = "%s must not be negative, got %d"
	ErrMsgDatabaseIncomplete = "DB_HOST, DB_PORT, DB_USER and DB_NAME must be set for the postgres driver"
)

// Warnings
const (
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgDevMode           = "DEV_MODE is enabled - cooldowns are not enforced"
)
