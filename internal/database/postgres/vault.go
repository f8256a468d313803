package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// ListVault returns the user's vaulted cards in rarity order
func (q queries) ListVault(ctx context.Context, userID string) ([]domain.VaultEntry, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	rows, err := q.db.Query(ctx, `
		SELECT user_id::text, rarity, card_id FROM vault_entries
		WHERE user_id = $1
		ORDER BY array_position(ARRAY['common', 'uncommon', 'rare', 'epic', 'legendary']::varchar[], rarity)`,
		userID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListVault, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VaultEntry, error) {
		var v domain.VaultEntry
		var rarity string
		err := row.Scan(&v.UserID, &rarity, &v.CardID)
		v.Rarity = domain.Rarity(rarity)
		return v, err
	})
	if err != nil {
		return nil, wrap(ErrMsgFailedToListVault, err)
	}
	return entries, nil
}

func (t *economyTx) GetVaultEntryForUpdate(ctx context.Context, userID string, rarity domain.Rarity) (*domain.VaultEntry, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	v := domain.VaultEntry{UserID: userID, Rarity: rarity}
	err := t.tx.QueryRow(ctx,
		`SELECT card_id FROM vault_entries WHERE user_id = $1 AND rarity = $2 FOR UPDATE`,
		userID, string(rarity)).Scan(&v.CardID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetVaultEntry, err)
	}
	return &v, nil
}

// PutVaultEntry fills or replaces the slot for entry.Rarity
func (t *economyTx) PutVaultEntry(ctx context.Context, entry domain.VaultEntry) error {
	if !validUserID(entry.UserID) {
		return userNotFound(entry.UserID)
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO vault_entries (user_id, rarity, card_id) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, rarity) DO UPDATE SET card_id = EXCLUDED.card_id`,
		entry.UserID, string(entry.Rarity), entry.CardID)
	if pgCode(err) == PgErrorCodeForeignKeyViolation {
		return fmt.Errorf("%w: user %s or card %d", domain.ErrUserNotFound, entry.UserID, entry.CardID)
	}
	if err != nil {
		return wrap(ErrMsgFailedToPutVaultEntry, err)
	}
	return nil
}

func (t *economyTx) DeleteVaultEntry(ctx context.Context, userID string, rarity domain.Rarity) error {
	if !validUserID(userID) {
		return nil
	}
	if _, err := t.tx.Exec(ctx, `DELETE FROM vault_entries WHERE user_id = $1 AND rarity = $2`, userID, string(rarity)); err != nil {
		return wrap(ErrMsgFailedToDeleteVaultEntry, err)
	}
	return nil
}
