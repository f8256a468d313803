package drop

// Storage operation labels
const (
	OpBeginTx  = "begin drop transaction"
	OpCommitTx = "commit drop transaction"
	OpLockUser = "lock drop user"
	OpGetUser  = "get drop user"
)

const ErrFmtUserNotFound = "%w: %s"

// Log messages
const (
	LogMsgDropGranted = "Drop granted"
)
