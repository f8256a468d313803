package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Base attribute defaults
const (
	DefaultServiceName = "card-heist"
	DefaultVersion     = "dev"
)

// Environment names used when no config has been loaded, and in tests
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
	EnvironmentTest       = "test"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
