package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced user or card is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a ledger row would break count bounds
	PgErrorCodeCheckViolation = "23514"
	// PgErrorCodeSerializationFailure and PgErrorCodeDeadlockDetected abort the transaction
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgTransactionAborted        = "transaction aborted by concurrent writer"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToGetUser           = "failed to get user"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
	ErrMsgFailedToGetUsernames      = "failed to get usernames"
	ErrMsgFailedToDeleteUser        = "failed to delete user"
	ErrMsgFailedToUpdateCooldown    = "failed to update cooldown"
	ErrMsgFailedToCountConnection   = "failed to increment connection count"
	ErrMsgFailedToListUsers         = "failed to list users"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetEntry       = "failed to get inventory entry"
	ErrMsgFailedToListEntries    = "failed to list inventory entries"
	ErrMsgFailedToIncrementEntry = "failed to increment inventory entry"
	ErrMsgFailedToUpdateEntry    = "failed to update inventory entry"
	ErrMsgFailedToDeleteEntry    = "failed to delete inventory entry"
	ErrMsgEntryMissing           = "inventory entry missing"
)

// Error Messages - Vault Operations
const (
	ErrMsgFailedToGetVaultEntry    = "failed to get vault entry"
	ErrMsgFailedToListVault        = "failed to list vault"
	ErrMsgFailedToPutVaultEntry    = "failed to put vault entry"
	ErrMsgFailedToDeleteVaultEntry = "failed to delete vault entry"
)

// Error Messages - Theft Operations
const (
	ErrMsgFailedToInsertTheft = "failed to insert theft record"
	ErrMsgFailedToListThefts  = "failed to list theft records"
	ErrMsgFailedToDeleteTheft = "failed to delete theft record"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListCards   = "failed to list cards"
	ErrMsgFailedToUpsertCards = "failed to upsert cards"
)
