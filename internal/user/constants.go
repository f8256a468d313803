package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cached entry layout.
// Increment this when cachedName changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cached usernames
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cached usernames
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Registration
// ============================================================================

// MaxUsernameLength bounds stored usernames
const MaxUsernameLength = 32

// ============================================================================
// Storage Operation Labels
// ============================================================================

const (
	OpBeginTx          = "begin user transaction"
	OpCommitTx         = "commit user transaction"
	OpInsertUser       = "insert user"
	OpGetUser          = "get user"
	OpDeleteUser       = "delete user"
	OpCountConnection  = "increment connection count"
	OpListProfileCards = "list profile cards"
	OpResolveNames     = "resolve usernames"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtInvalidUsername = "%w: username must be 1-%d characters"
	ErrFmtUserNotFound    = "%w: %s"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterCalled    = "Register called"
	LogMsgUserRegistered    = "User registered"
	LogMsgUserDeleted       = "User deleted"
	LogMsgConnectionCounted = "Connection recorded"
)
