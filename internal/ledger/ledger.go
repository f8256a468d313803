// Package ledger owns the per-user, per-card ownership counts and the
// committed-to-forge sub-count. Every mutation runs inside the caller's
// transaction on a row lock taken by GetEntryForUpdate.
package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// Ledger applies count/committed changes and annotates rows with catalog data
type Ledger struct {
	catalog *catalog.Catalog
}

// New creates a Ledger resolving card ids against c
func New(c *catalog.Catalog) *Ledger {
	return &Ledger{catalog: c}
}

// Add increments count for (user, card), creating the row when absent
func (l *Ledger) Add(ctx context.Context, tx repository.InventoryTx, userID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	if _, err := l.catalog.Get(cardID); err != nil {
		return err
	}
	if err := tx.IncrementEntry(ctx, userID, cardID, qty); err != nil {
		return repository.StorageError(OpAddEntry, err)
	}
	return nil
}

// Remove takes qty free units of card away from user
func (l *Ledger) Remove(ctx context.Context, tx repository.InventoryTx, userID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	entry, err := l.lock(ctx, tx, userID, cardID)
	if err != nil {
		return err
	}
	if entry.Free() < qty {
		return fmt.Errorf(ErrFmtInsufficientFree, domain.ErrInsufficientQuantity, userID, entry.Free(), cardID, qty)
	}
	entry.Count -= qty
	return l.write(ctx, tx, entry)
}

// Transfer moves qty free units of card from one user to another. Both rows
// are locked in user id order before either is written, so opposing
// transfers of the same card queue instead of deadlocking.
func (l *Ledger) Transfer(ctx context.Context, tx repository.InventoryTx, fromID, toID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	if fromID == toID {
		return fmt.Errorf(ErrFmtSelfTransfer, domain.ErrInvalidInput, fromID)
	}
	if _, err := l.catalog.Get(cardID); err != nil {
		return err
	}

	order := []string{fromID, toID}
	if toID < fromID {
		order[0], order[1] = toID, fromID
	}
	var from domain.InventoryEntry
	for _, id := range order {
		entry, err := l.lock(ctx, tx, id, cardID)
		if err != nil {
			return err
		}
		if id == fromID {
			from = entry
		}
	}

	if from.Free() < qty {
		return fmt.Errorf(ErrFmtInsufficientFree, domain.ErrInsufficientQuantity, fromID, from.Free(), cardID, qty)
	}
	from.Count -= qty
	if err := l.write(ctx, tx, from); err != nil {
		return err
	}
	if err := tx.IncrementEntry(ctx, toID, cardID, qty); err != nil {
		return repository.StorageError(OpAddEntry, err)
	}
	return nil
}

// RemoveCommitted consumes qty committed units, lowering count and committed together
func (l *Ledger) RemoveCommitted(ctx context.Context, tx repository.InventoryTx, userID string, cardID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveQuantity, domain.ErrInvalidInput, qty)
	}
	entry, err := l.lock(ctx, tx, userID, cardID)
	if err != nil {
		return err
	}
	if entry.Committed < qty {
		return fmt.Errorf(ErrFmtInsufficientCommitted, domain.ErrInsufficientQuantity, userID, entry.Committed, cardID, qty)
	}
	entry.Count -= qty
	entry.Committed -= qty
	return l.write(ctx, tx, entry)
}

// SetCommitted moves delta units into (delta > 0) or out of (delta < 0) the forge pool
func (l *Ledger) SetCommitted(ctx context.Context, tx repository.InventoryTx, userID string, cardID, delta int) error {
	if delta == 0 {
		return fmt.Errorf(ErrFmtZeroDelta, domain.ErrInvalidInput)
	}
	entry, err := l.lock(ctx, tx, userID, cardID)
	if err != nil {
		return err
	}
	if delta > 0 && entry.Free() < delta {
		return fmt.Errorf(ErrFmtInsufficientFree, domain.ErrInsufficientQuantity, userID, entry.Free(), cardID, delta)
	}
	if delta < 0 && entry.Committed < -delta {
		return fmt.Errorf(ErrFmtNotCommitted, domain.ErrNotCommitted, userID, entry.Committed, cardID, -delta)
	}
	entry.Committed += delta
	return l.write(ctx, tx, entry)
}

// ListFree returns cards with a positive free quantity, annotated with it
func (l *Ledger) ListFree(ctx context.Context, r repository.InventoryReader, userID string) ([]domain.OwnedCard, error) {
	return l.list(ctx, r, userID, domain.InventoryEntry.Free)
}

// ListCommitted returns cards with a positive committed quantity, annotated with it
func (l *Ledger) ListCommitted(ctx context.Context, r repository.InventoryReader, userID string) ([]domain.OwnedCard, error) {
	return l.list(ctx, r, userID, func(e domain.InventoryEntry) int { return e.Committed })
}

func (l *Ledger) list(ctx context.Context, r repository.InventoryReader, userID string, qty func(domain.InventoryEntry) int) ([]domain.OwnedCard, error) {
	entries, err := r.ListEntries(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpListEntries, err)
	}
	return l.annotate(entries, qty)
}

// annotate resolves the entries' cards with one batched lookup, skipping rows
// whose selected quantity is not positive (zero rows included)
func (l *Ledger) annotate(entries []domain.InventoryEntry, qty func(domain.InventoryEntry) int) ([]domain.OwnedCard, error) {
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if qty(e) > 0 {
			ids = append(ids, e.CardID)
		}
	}
	cards, err := l.catalog.Lookup(ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OwnedCard, 0, len(ids))
	for _, e := range entries {
		if q := qty(e); q > 0 {
			out = append(out, domain.OwnedCard{Card: cards[e.CardID], Quantity: q})
		}
	}
	return out, nil
}

// Committed returns the user's committed cards read under row locks
func (l *Ledger) Committed(ctx context.Context, tx repository.InventoryTx, userID string) ([]domain.OwnedCard, error) {
	entries, err := tx.ListEntriesForUpdate(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpListEntries, err)
	}
	return l.annotate(entries, func(e domain.InventoryEntry) int { return e.Committed })
}

func (l *Ledger) lock(ctx context.Context, tx repository.InventoryTx, userID string, cardID int) (domain.InventoryEntry, error) {
	entry, err := tx.GetEntryForUpdate(ctx, userID, cardID)
	if err != nil {
		return domain.InventoryEntry{}, repository.StorageError(OpGetEntry, err)
	}
	if entry == nil {
		return domain.InventoryEntry{UserID: userID, CardID: cardID}, nil
	}
	return *entry, nil
}

// write persists entry, deleting the row once nothing is owned
func (l *Ledger) write(ctx context.Context, tx repository.InventoryTx, entry domain.InventoryEntry) error {
	var err error
	if entry.Count == 0 {
		err = tx.DeleteEntry(ctx, entry.UserID, entry.CardID)
	} else {
		err = tx.UpdateEntry(ctx, entry)
	}
	if err != nil {
		return repository.StorageError(OpWriteEntry, err)
	}
	return nil
}
