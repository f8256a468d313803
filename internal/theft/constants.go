package theft

// UnknownThiefName is shown for a record whose thief can no longer be resolved
const UnknownThiefName = "unknown"

// Storage operation labels
const (
	OpBeginTx      = "begin theft transaction"
	OpCommitTx     = "commit theft transaction"
	OpLockThief    = "lock thief"
	OpListUsers    = "list theft candidates"
	OpListEntries  = "list victim inventory"
	OpGetVictim    = "get victim"
	OpInsertRecord = "insert theft record"
	OpListRecords  = "list theft records"
	OpDeleteRecord = "delete theft record"
	OpResolveNames = "resolve thief names"
)

// Error message formats
const (
	ErrFmtNoEligibleVictim = "%w: no victim with free cards after %d draws"
	ErrFmtRecordNotFound   = "%w: record %d for user %s"
)

// Log messages
const (
	LogMsgTheftExecuted   = "Theft executed"
	LogMsgTheftLostRace   = "Theft candidate card taken concurrently, drawing again"
	LogMsgRecordDeleted   = "Theft record deleted"
	LogMsgNotifierMissing = "No theft notifier configured"
)
