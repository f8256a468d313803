// Package forge merges a user's committed cards into a single reward card,
// weighted by the rarity of what was committed.
package forge

import (
	"context"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

// Service defines the forge operations
type Service interface {
	// Commit moves qty free units of card into the forge slot
	Commit(ctx context.Context, userID string, cardID, qty int) error
	// Release moves qty committed units of card back to the free pool
	Release(ctx context.Context, userID string, cardID, qty int) error
	ListCommitted(ctx context.Context, userID string) ([]domain.OwnedCard, error)
	Preview(ctx context.Context, userID string) (*domain.ForgePreview, error)
	// Execute consumes every committed unit and awards one card
	Execute(ctx context.Context, userID string) (*domain.ForgeResult, error)
}

type service struct {
	repo    repository.Economy
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	sampler utils.Sampler
}

// NewService creates a new forge service
func NewService(repo repository.Economy, l *ledger.Ledger, c *catalog.Catalog, sampler utils.Sampler) Service {
	return &service{
		repo:    repo,
		ledger:  l,
		catalog: c,
		sampler: sampler,
	}
}

func (s *service) Commit(ctx context.Context, userID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	if err := s.setCommitted(ctx, userID, cardID, qty); err != nil {
		return err
	}
	logger.ForUser(ctx, userID).Info(LogMsgCardCommitted, "card_id", cardID, "quantity", qty)
	return nil
}

func (s *service) Release(ctx context.Context, userID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	if err := s.setCommitted(ctx, userID, cardID, -qty); err != nil {
		return err
	}
	logger.ForUser(ctx, userID).Info(LogMsgCardReleased, "card_id", cardID, "quantity", qty)
	return nil
}

func (s *service) setCommitted(ctx context.Context, userID string, cardID, delta int) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.ledger.SetCommitted(ctx, tx, userID, cardID, delta); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return repository.StorageError(OpCommitTx, err)
	}
	return nil
}

func (s *service) ListCommitted(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	return s.ledger.ListCommitted(ctx, s.repo, userID)
}

func (s *service) Preview(ctx context.Context, userID string) (*domain.ForgePreview, error) {
	committed, err := s.ledger.ListCommitted(ctx, s.repo, userID)
	if err != nil {
		return nil, err
	}
	weight := PreviewWeight(committed)
	return &domain.ForgePreview{
		Committed: committed,
		Weight:    weight,
		Rarity:    TierForWeight(float64(weight)),
	}, nil
}

func (s *service) Execute(ctx context.Context, userID string) (*domain.ForgeResult, error) {
	log := logger.ForUser(ctx, userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Serializes forge executions of one user
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpLockUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}

	committed, err := s.ledger.Committed(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(committed) == 0 {
		return nil, fmt.Errorf(ErrFmtNothingCommitted, domain.ErrNothingCommitted, userID)
	}

	weight, rarity := Resolve(committed, s.sampler.Float64)
	awarded, err := s.catalog.Random(s.sampler, rarity)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for _, c := range committed {
		if err := s.ledger.RemoveCommitted(ctx, tx, userID, c.ID, c.Quantity); err != nil {
			return nil, err
		}
		consumed += c.Quantity
	}
	if err := s.ledger.Add(ctx, tx, userID, awarded.ID, 1); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.StorageError(OpCommitTx, err)
	}

	metrics.ForgesTotal.WithLabelValues(string(rarity)).Inc()
	metrics.ForgeCardsConsumed.Add(float64(consumed))
	log.Info(LogMsgForgeExecuted, "weight", weight, "rarity", rarity, "card_id", awarded.ID, "consumed", consumed)

	return &domain.ForgeResult{
		Consumed:     committed,
		Weight:       weight,
		OutputRarity: rarity,
		Awarded:      awarded,
	}, nil
}
