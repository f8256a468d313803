// Package vault protects at most one card per rarity per user from theft and
// forge consumption. Vaulted units leave the ledger while stored.
package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// Service defines the vault operations
type Service interface {
	// Store moves one free unit of card into the slot for its rarity,
	// returning any previous occupant to the free ledger
	Store(ctx context.Context, userID string, cardID int) (*domain.VaultStoreResult, error)
	// Release empties the slot for rarity back into the free ledger
	Release(ctx context.Context, userID string, rarity domain.Rarity) (*domain.Card, error)
	List(ctx context.Context, userID string) ([]domain.Card, error)
}

type service struct {
	repo    repository.Economy
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
}

// NewService creates a new vault service
func NewService(repo repository.Economy, l *ledger.Ledger, c *catalog.Catalog) Service {
	return &service{repo: repo, ledger: l, catalog: c}
}

func (s *service) Store(ctx context.Context, userID string, cardID int) (*domain.VaultStoreResult, error) {
	log := logger.ForUser(ctx, userID)

	card, err := s.catalog.Get(cardID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	if err := s.ledger.Remove(ctx, tx, userID, card.ID, 1); err != nil {
		if errors.Is(err, domain.ErrInsufficientQuantity) {
			return nil, fmt.Errorf(ErrFmtNotOwnedFree, domain.ErrNotOwnedFree, userID, card.ID, err)
		}
		return nil, err
	}

	result := &domain.VaultStoreResult{Stored: card}

	existing, err := tx.GetVaultEntryForUpdate(ctx, userID, card.Rarity)
	if err != nil {
		return nil, repository.StorageError(OpGetEntry, err)
	}
	if existing != nil {
		evicted, err := s.catalog.Get(existing.CardID)
		if err != nil {
			return nil, err
		}
		if err := s.ledger.Add(ctx, tx, userID, evicted.ID, 1); err != nil {
			return nil, err
		}
		result.Evicted = &evicted
	}

	entry := domain.VaultEntry{UserID: userID, Rarity: card.Rarity, CardID: card.ID}
	if err := tx.PutVaultEntry(ctx, entry); err != nil {
		return nil, repository.StorageError(OpPutEntry, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.StorageError(OpCommitTx, err)
	}

	metrics.VaultOperationsTotal.WithLabelValues(metrics.OperationStore).Inc()
	if result.Evicted != nil {
		metrics.VaultOperationsTotal.WithLabelValues(metrics.OperationEvict).Inc()
		log.Info(LogMsgCardEvicted, "card_id", result.Evicted.ID, "rarity", card.Rarity)
	}
	log.Info(LogMsgCardStored, "card_id", card.ID, "rarity", card.Rarity)
	return result, nil
}

func (s *service) Release(ctx context.Context, userID string, rarity domain.Rarity) (*domain.Card, error) {
	if !rarity.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRarity, rarity)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	entry, err := tx.GetVaultEntryForUpdate(ctx, userID, rarity)
	if err != nil {
		return nil, repository.StorageError(OpGetEntry, err)
	}
	if entry == nil {
		return nil, fmt.Errorf(ErrFmtVaultEmpty, domain.ErrVaultEmpty, userID, rarity)
	}
	card, err := s.catalog.Get(entry.CardID)
	if err != nil {
		return nil, err
	}

	if err := tx.DeleteVaultEntry(ctx, userID, rarity); err != nil {
		return nil, repository.StorageError(OpDelEntry, err)
	}
	if err := s.ledger.Add(ctx, tx, userID, card.ID, 1); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.StorageError(OpCommitTx, err)
	}

	metrics.VaultOperationsTotal.WithLabelValues(metrics.OperationRelease).Inc()
	logger.ForUser(ctx, userID).Info(LogMsgCardReleased, "card_id", card.ID, "rarity", rarity)
	return &card, nil
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Card, error) {
	entries, err := s.repo.ListVault(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpListVault, err)
	}
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.CardID
	}
	cards, err := s.catalog.Lookup(ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Card, len(entries))
	for i, e := range entries {
		out[i] = cards[e.CardID]
	}
	return out, nil
}

// lockUser serializes vault operations of one user, since an absent slot has no row to lock
func (s *service) lockUser(ctx context.Context, tx repository.EconomyTx, userID string) error {
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return repository.StorageError(OpLockUser, err)
	}
	if user == nil {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return nil
}
