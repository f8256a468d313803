package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting CardHeist"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgConfigWarning        = "Configuration warning"
	LogMsgStorageSelected      = "Storage driver selected"
	LogMsgSyncingCatalog       = "Syncing card catalog"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingNotifier     = "Stopping notification workers"
	LogMsgServerStopped        = "Server stopped"
	LogMsgSignalReceived       = "Shutdown signal received"
	LogMsgLogCleanupFailed     = "Failed to remove old log file"
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgCreateLogDir  = "failed to create logs directory: %w"
	ErrMsgOpenLogFile   = "failed to open log file: %w"
	ErrMsgOpenStorage   = "failed to open storage: %w"
	ErrMsgMigrate       = "failed to migrate database: %w"
	ErrMsgUnknownDriver = "unknown storage driver %q"
	ErrMsgReadSchema    = "failed to read catalog schema: %w"
	ErrMsgLoadCatalog   = "failed to load catalog seed: %w"
	ErrMsgSyncCatalog   = "failed to sync catalog: %w"
	ErrMsgServerFailed  = "server failed: %w"
)
