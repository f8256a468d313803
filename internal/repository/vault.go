package repository

import (
	"context"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// VaultReader reads vault rows
type VaultReader interface {
	ListVault(ctx context.Context, userID string) ([]domain.VaultEntry, error)
}

// VaultTx mutates vault rows inside a transaction
type VaultTx interface {
	VaultReader
	GetVaultEntryForUpdate(ctx context.Context, userID string, rarity domain.Rarity) (*domain.VaultEntry, error)
	PutVaultEntry(ctx context.Context, entry domain.VaultEntry) error
	DeleteVaultEntry(ctx context.Context, userID string, rarity domain.Rarity) error
}
