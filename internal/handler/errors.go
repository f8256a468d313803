package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingUser           = "Missing X-User-ID header"

	// Path parameter error messages
	ErrMsgInvalidRarityParam = "Invalid rarity"
	ErrMsgInvalidRecordID    = "Invalid notification ID"
)

// Success messages for API responses
const (
	MsgUserDeleted         = "User deleted"
	MsgNotificationDeleted = "Notification deleted"
	MsgConnectionRecorded  = "Connection recorded"
	MsgStatusOK            = "ok"
	MsgStatusUnavailable   = "unavailable"
	MsgStorageCheckFailed  = "storage check failed"
)

// Header and path parameter names
const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
	PathParamRarity = "rarity"
	PathParamID     = "id"
)

// Request bounds
const (
	MaxUsernameLength = 32
	MaxQuantity       = 10000
)

// Log messages
const (
	LogMsgServiceError    = "Service operation failed"
	LogMsgClientError     = "Request rejected"
	LogMsgMissingUser     = "Request without user identity"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
