package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgUsernameTaken  = "username already taken"
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgCardNotFound   = "card not found"
	ErrMsgInvalidRarity  = "invalid rarity"
	ErrMsgRecordNotFound = "theft record not found"

	// Ledger errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgNotCommitted         = "card is not committed to the forge"

	// Forge errors
	ErrMsgNothingCommitted = "nothing committed to the forge"
	ErrMsgEmptyTier        = "no catalog card exists for rarity"

	// Vault errors
	ErrMsgNotOwnedFree = "card is not owned free"
	ErrMsgVaultEmpty   = "vault slot is empty"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Theft errors
	ErrMsgNoEligibleVictim = "no eligible victim"

	// Database/System errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgTxClosed           = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	// Catalog errors
	ErrCardNotFound  = errors.New(ErrMsgCardNotFound)
	ErrInvalidRarity = errors.New(ErrMsgInvalidRarity)

	// Ledger errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrNotCommitted         = errors.New(ErrMsgNotCommitted)

	// Forge errors
	ErrNothingCommitted = errors.New(ErrMsgNothingCommitted)
	ErrEmptyTier        = errors.New(ErrMsgEmptyTier)

	// Vault errors
	ErrNotOwnedFree = errors.New(ErrMsgNotOwnedFree)
	ErrVaultEmpty   = errors.New(ErrMsgVaultEmpty)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Theft errors
	ErrNoEligibleVictim = errors.New(ErrMsgNoEligibleVictim)
	ErrRecordNotFound   = errors.New(ErrMsgRecordNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Storage errors. Anything wrapping this is safe to retry with backoff.
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
)
