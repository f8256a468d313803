package ledger

// Storage operation labels
const (
	OpGetEntry    = "get inventory entry"
	OpListEntries = "list inventory entries"
	OpWriteEntry  = "write inventory entry"
	OpAddEntry    = "add inventory entry"
)

// Error message formats
const (
	ErrFmtInsufficientFree      = "%w: user %s holds %d free of card %d, need %d"
	ErrFmtInsufficientCommitted = "%w: user %s has %d of card %d committed, need %d"
	ErrFmtNotCommitted          = "%w: user %s has %d of card %d committed, cannot release %d"
	ErrFmtNonPositiveQuantity   = "%w: quantity must be positive, got %d"
	ErrFmtZeroDelta             = "%w: commit delta must be non-zero"
	ErrFmtSelfTransfer          = "%w: user %s cannot transfer to themselves"
)
