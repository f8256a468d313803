package vault

// Storage operation labels
const (
	OpBeginTx   = "begin vault transaction"
	OpCommitTx  = "commit vault transaction"
	OpLockUser  = "lock vault user"
	OpGetEntry  = "get vault entry"
	OpPutEntry  = "put vault entry"
	OpDelEntry  = "delete vault entry"
	OpListVault = "list vault"
)

// Error message formats
const (
	ErrFmtNotOwnedFree = "%w: user %s card %d: %v"
	ErrFmtVaultEmpty   = "%w: user %s rarity %s"
)

// Log messages
const (
	LogMsgCardStored   = "Card stored in vault"
	LogMsgCardEvicted  = "Vaulted card evicted to free inventory"
	LogMsgCardReleased = "Card released from vault"
)
