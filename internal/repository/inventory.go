package repository

import (
	"context"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// InventoryReader reads ledger rows. Implementations may return rows with Count == 0.
type InventoryReader interface {
	ListEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

// InventoryTx mutates ledger rows inside a transaction
type InventoryTx interface {
	InventoryReader
	// GetEntryForUpdate locks one row; returns nil, nil when the row is absent
	GetEntryForUpdate(ctx context.Context, userID string, cardID int) (*domain.InventoryEntry, error)
	ListEntriesForUpdate(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	// IncrementEntry adds qty to count, creating the row when absent
	IncrementEntry(ctx context.Context, userID string, cardID, qty int) error
	UpdateEntry(ctx context.Context, entry domain.InventoryEntry) error
	DeleteEntry(ctx context.Context, userID string, cardID int) error
}
