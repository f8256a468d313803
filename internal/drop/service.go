// Package drop grants one random common card per cooldown window.
package drop

import (
	"context"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/cooldown"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

// Service defines the drop operations
type Service interface {
	Execute(ctx context.Context, userID string) (*domain.DropResult, error)
	Status(ctx context.Context, userID string) (*domain.DropStatus, error)
}

type service struct {
	repo    repository.Economy
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	clock   *cooldown.Clock
	sampler utils.Sampler
}

// NewService creates a new drop service
func NewService(repo repository.Economy, l *ledger.Ledger, c *catalog.Catalog, clock *cooldown.Clock, sampler utils.Sampler) Service {
	return &service{
		repo:    repo,
		ledger:  l,
		catalog: c,
		clock:   clock,
		sampler: sampler,
	}
}

func (s *service) Execute(ctx context.Context, userID string) (*domain.DropResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpLockUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf(ErrFmtUserNotFound, domain.ErrUserNotFound, userID)
	}

	now := s.clock.Now()
	if err := s.clock.Check(ctx, user, domain.ActionDrop, now); err != nil {
		return nil, err
	}

	card, err := s.catalog.Random(s.sampler, domain.RarityCommon)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Add(ctx, tx, userID, card.ID, 1); err != nil {
		return nil, err
	}
	next, err := s.clock.Advance(ctx, tx, userID, domain.ActionDrop, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.StorageError(OpCommitTx, err)
	}

	metrics.DropsTotal.WithLabelValues(string(card.Rarity)).Inc()
	logger.ForUser(ctx, userID).Info(LogMsgDropGranted, "card_id", card.ID, "next_drop_time", next)

	return &domain.DropResult{Card: card, NextDropTime: next}, nil
}

func (s *service) Status(ctx context.Context, userID string) (*domain.DropStatus, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpGetUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf(ErrFmtUserNotFound, domain.ErrUserNotFound, userID)
	}
	next := cooldown.NextTime(user, domain.ActionDrop)
	return &domain.DropStatus{
		NextDropTime: next,
		Available:    s.clock.Remaining(user, domain.ActionDrop, s.clock.Now()) == 0,
	}, nil
}
