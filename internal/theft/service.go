// Package theft moves one random free card from a random other user to the
// thief, and keeps the victim-facing log of those thefts.
package theft

import (
	"context"
	"errors"
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

// Notifier is told about a victim once their theft has committed.
// Implementations must not block; delivery failures are theirs to log.
type Notifier interface {
	TheftCommitted(ctx context.Context, victimID string)
}

// Service defines the theft operation
type Service interface {
	Execute(ctx context.Context, thiefID string) (*domain.TheftResult, error)
}

type service struct {
	repo     repository.Economy
	ledger   *ledger.Ledger
	catalog  *catalog.Catalog
	clock    *cooldown.Clock
	sampler  utils.Sampler
	notifier Notifier
}

// NewService creates a new theft service; notifier may be nil
func NewService(repo repository.Economy, l *ledger.Ledger, c *catalog.Catalog, clock *cooldown.Clock, sampler utils.Sampler, notifier Notifier) Service {
	return &service{
		repo:     repo,
		ledger:   l,
		catalog:  c,
		clock:    clock,
		sampler:  sampler,
		notifier: notifier,
	}
}

type victimPick struct {
	victimID string
	cardID   int
	attempts int
}

func (s *service) Execute(ctx context.Context, thiefID string) (*domain.TheftResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	thief, err := tx.GetUserForUpdate(ctx, thiefID)
	if err != nil {
		return nil, repository.StorageError(OpLockThief, err)
	}
	if thief == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, thiefID)
	}

	now := s.clock.Now()
	if err := s.clock.Check(ctx, thief, domain.ActionTheft, now); err != nil {
		metrics.TheftsTotal.WithLabelValues(metrics.OutcomeCooldown).Inc()
		return nil, err
	}

	pick, err := s.pickVictim(ctx, tx, thiefID)
	if err != nil {
		return nil, err
	}

	card, err := s.catalog.Get(pick.cardID)
	if err != nil {
		return nil, err
	}
	next, err := s.clock.Advance(ctx, tx, thiefID, domain.ActionTheft, now)
	if err != nil {
		return nil, err
	}
	record := &domain.TheftRecord{
		ThiefID:  thiefID,
		VictimID: pick.victimID,
		CardID:   card.ID,
		StolenAt: now,
	}
	if err := tx.InsertTheft(ctx, record); err != nil {
		return nil, repository.StorageError(OpInsertRecord, err)
	}

	victim, err := tx.GetUser(ctx, pick.victimID)
	if err != nil {
		return nil, repository.StorageError(OpGetVictim, err)
	}
	if victim == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, pick.victimID)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.TheftsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, repository.StorageError(OpCommitTx, err)
	}

	metrics.TheftsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.VictimSearchAttempts.Observe(float64(pick.attempts))
	log.Info(LogMsgTheftExecuted,
		"thief_id", thiefID, "victim_id", pick.victimID, "card_id", card.ID,
		"record_id", record.ID, "attempts", pick.attempts)

	if s.notifier != nil {
		s.notifier.TheftCommitted(ctx, pick.victimID)
	} else {
		log.Debug(LogMsgNotifierMissing)
	}

	return &domain.TheftResult{
		Card:          card,
		ThiefName:     thief.Username,
		VictimName:    victim.Username,
		VictimID:      victim.ID,
		NextTheftTime: next,
	}, nil
}

// pickVictim draws a victim and one of their free cards, up to MaxVictimAttempts
// times, and moves that unit to the thief. A draw that loses the unit to a
// concurrent theft counts as a failed attempt.
func (s *service) pickVictim(ctx context.Context, tx repository.EconomyTx, thiefID string) (*victimPick, error) {
	candidates, err := tx.ListOtherUserIDs(ctx, thiefID)
	if err != nil {
		return nil, repository.StorageError(OpListUsers, err)
	}

	for attempt := 1; attempt <= domain.MaxVictimAttempts; attempt++ {
		victimID, ok := utils.PickOne(s.sampler, candidates)
		if !ok {
			break
		}

		entries, err := tx.ListEntries(ctx, victimID)
		if err != nil {
			return nil, repository.StorageError(OpListEntries, err)
		}
		var free []domain.InventoryEntry
		for _, e := range entries {
			if e.Free() > 0 {
				free = append(free, e)
			}
		}
		entry, ok := utils.PickOne(s.sampler, free)
		if !ok {
			continue
		}

		err = s.ledger.Transfer(ctx, tx, victimID, thiefID, entry.CardID, 1)
		if errors.Is(err, domain.ErrInsufficientQuantity) {
			logger.FromContext(ctx).Debug(LogMsgTheftLostRace, "victim_id", victimID, "card_id", entry.CardID)
			continue
		}
		if err != nil {
			return nil, err
		}
		return &victimPick{victimID: victimID, cardID: entry.CardID, attempts: attempt}, nil
	}

	metrics.TheftsTotal.WithLabelValues(metrics.OutcomeNoVictim).Inc()
	return nil, fmt.Errorf(ErrFmtNoEligibleVictim, domain.ErrNoEligibleVictim, domain.MaxVictimAttempts)
}
