package repository

import (
	"context"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// Economy defines the persistence boundary of the card economy
type Economy interface {
	UserReader
	InventoryReader
	VaultReader
	TheftReader
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx is a single logical transaction over users, ledger, vault and thefts
type EconomyTx interface {
	Tx
	UserTx
	InventoryTx
	VaultTx
	TheftTx
}

// Catalog defines persistence for card definitions
type Catalog interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
	UpsertCards(ctx context.Context, cards []domain.Card) error
}
