package theft

import (
	"context"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// NameResolver maps user ids to usernames in one call
type NameResolver interface {
	Usernames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// Log defines the victim-facing theft notifications
type Log interface {
	List(ctx context.Context, victimID string) ([]domain.TheftNotification, error)
	Delete(ctx context.Context, victimID string, recordID int64) error
}

type theftLog struct {
	repo    repository.Economy
	catalog *catalog.Catalog
	names   NameResolver
}

// NewLog creates the theft log; a nil names resolver reads usernames from repo
func NewLog(repo repository.Economy, c *catalog.Catalog, names NameResolver) Log {
	if names == nil {
		names = repoNames{repo: repo}
	}
	return &theftLog{repo: repo, catalog: c, names: names}
}

func (l *theftLog) List(ctx context.Context, victimID string) ([]domain.TheftNotification, error) {
	records, err := l.repo.ListTheftsByVictim(ctx, victimID)
	if err != nil {
		return nil, repository.StorageError(OpListRecords, err)
	}
	if len(records) == 0 {
		return []domain.TheftNotification{}, nil
	}

	cardIDs := make([]int, 0, len(records))
	thiefIDs := make([]string, 0, len(records))
	for _, r := range records {
		cardIDs = append(cardIDs, r.CardID)
		thiefIDs = append(thiefIDs, r.ThiefID)
	}
	cards, err := l.catalog.Lookup(cardIDs)
	if err != nil {
		return nil, err
	}
	names, err := l.names.Usernames(ctx, thiefIDs)
	if err != nil {
		return nil, repository.StorageError(OpResolveNames, err)
	}

	out := make([]domain.TheftNotification, len(records))
	for i, r := range records {
		name, ok := names[r.ThiefID]
		if !ok {
			name = UnknownThiefName
		}
		out[i] = domain.TheftNotification{
			ID:        r.ID,
			Card:      cards[r.CardID],
			ThiefName: name,
			StolenAt:  r.StolenAt,
		}
	}
	return out, nil
}

func (l *theftLog) Delete(ctx context.Context, victimID string, recordID int64) error {
	tx, err := l.repo.BeginTx(ctx)
	if err != nil {
		return repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	deleted, err := tx.DeleteTheft(ctx, victimID, recordID)
	if err != nil {
		return repository.StorageError(OpDeleteRecord, err)
	}
	if !deleted {
		return fmt.Errorf(ErrFmtRecordNotFound, domain.ErrRecordNotFound, recordID, victimID)
	}
	if err := tx.Commit(ctx); err != nil {
		return repository.StorageError(OpCommitTx, err)
	}

	logger.ForUser(ctx, victimID).Info(LogMsgRecordDeleted, "record_id", recordID)
	return nil
}

type repoNames struct {
	repo repository.UserReader
}

func (r repoNames) Usernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	return r.repo.GetUsernames(ctx, userIDs)
}
