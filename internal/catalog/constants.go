package catalog

import "errors"

// ErrDuplicateCardID is returned when a seed defines the same id twice
var ErrDuplicateCardID = errors.New("duplicate card id")

// DefaultSchemaName identifies the embedded card seed schema
const DefaultSchemaName = "cards.schema.json"

// Error message formats
const (
	ErrMsgReadSeedFailed   = "failed to read card seed: %w"
	ErrMsgParseSeedFailed  = "failed to parse card seed: %w"
	ErrMsgSeedInvalid      = "card seed %s failed validation: %w"
	ErrMsgSyncFailed       = "failed to sync catalog: %w"
	ErrMsgLoadStoredFailed = "failed to load stored catalog: %w"
)

// Log messages
const (
	LogMsgCatalogSynced = "Card catalog synced"
	LogMsgTierEmpty     = "Catalog has no cards for rarity"
)
