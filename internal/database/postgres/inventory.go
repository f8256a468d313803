package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

const entryColumns = `user_id::text, card_id, count, committed`

func scanEntries(rows pgx.Rows) ([]domain.InventoryEntry, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.UserID, &e.CardID, &e.Count, &e.Committed)
		return e, err
	})
}

// ListEntries returns the user's rows with a positive count, ordered by card
func (q queries) ListEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, q.db, userID, false)
}

func (t *economyTx) ListEntriesForUpdate(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, t.tx, userID, true)
}

func listEntries(ctx context.Context, db querier, userID string, forUpdate bool) ([]domain.InventoryEntry, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	sql := `SELECT ` + entryColumns + ` FROM inventory_entries WHERE user_id = $1 AND count > 0 ORDER BY card_id`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	rows, err := db.Query(ctx, sql, userID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListEntries, err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListEntries, err)
	}
	return entries, nil
}

func (t *economyTx) GetEntryForUpdate(ctx context.Context, userID string, cardID int) (*domain.InventoryEntry, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	var e domain.InventoryEntry
	err := t.tx.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM inventory_entries WHERE user_id = $1 AND card_id = $2 FOR UPDATE`,
		userID, cardID).Scan(&e.UserID, &e.CardID, &e.Count, &e.Committed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetEntry, err)
	}
	return &e, nil
}

// IncrementEntry upserts the row so concurrent grants of a new card never collide
func (t *economyTx) IncrementEntry(ctx context.Context, userID string, cardID, qty int) error {
	if !validUserID(userID) {
		return userNotFound(userID)
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO inventory_entries (user_id, card_id, count, committed)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id, card_id) DO UPDATE SET count = inventory_entries.count + EXCLUDED.count`,
		userID, cardID, qty)
	if pgCode(err) == PgErrorCodeForeignKeyViolation {
		return fmt.Errorf("%w: user %s or card %d", domain.ErrUserNotFound, userID, cardID)
	}
	if err != nil {
		return wrap(ErrMsgFailedToIncrementEntry, err)
	}
	return nil
}

func (t *economyTx) UpdateEntry(ctx context.Context, entry domain.InventoryEntry) error {
	if !validUserID(entry.UserID) {
		return userNotFound(entry.UserID)
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE inventory_entries SET count = $3, committed = $4 WHERE user_id = $1 AND card_id = $2`,
		entry.UserID, entry.CardID, entry.Count, entry.Committed)
	if pgCode(err) == PgErrorCodeCheckViolation {
		return fmt.Errorf("%w: committed %d exceeds count %d", domain.ErrInvalidInput, entry.Committed, entry.Count)
	}
	if err != nil {
		return wrap(ErrMsgFailedToUpdateEntry, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: user %s card %d", ErrMsgEntryMissing, entry.UserID, entry.CardID)
	}
	return nil
}

func (t *economyTx) DeleteEntry(ctx context.Context, userID string, cardID int) error {
	if !validUserID(userID) {
		return nil
	}
	if _, err := t.tx.Exec(ctx, `DELETE FROM inventory_entries WHERE user_id = $1 AND card_id = $2`, userID, cardID); err != nil {
		return wrap(ErrMsgFailedToDeleteEntry, err)
	}
	return nil
}
