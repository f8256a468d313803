package forge

// Storage operation labels
const (
	OpBeginTx  = "begin forge transaction"
	OpCommitTx = "commit forge transaction"
	OpLockUser = "lock forge user"
)

// Error message formats
const (
	ErrFmtNothingCommitted    = "%w: user %s"
	ErrFmtNonPositiveQuantity = "%w: quantity must be positive, got %d"
)

// Log messages
const (
	LogMsgCardCommitted = "Card committed to forge"
	LogMsgCardReleased  = "Card released from forge"
	LogMsgForgeExecuted = "Forge executed"
)
