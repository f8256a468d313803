package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// ListTheftsByVictim returns the victim's records newest first
func (q queries) ListTheftsByVictim(ctx context.Context, victimID string) ([]domain.TheftRecord, error) {
	if !validUserID(victimID) {
		return nil, nil
	}
	rows, err := q.db.Query(ctx, `
		SELECT theft_id, thief_id::text, victim_id::text, card_id, stolen_at
		FROM theft_records
		WHERE victim_id = $1
		ORDER BY stolen_at DESC, theft_id DESC`, victimID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListThefts, err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TheftRecord, error) {
		var r domain.TheftRecord
		err := row.Scan(&r.ID, &r.ThiefID, &r.VictimID, &r.CardID, &r.StolenAt)
		r.StolenAt = r.StolenAt.UTC()
		return r, err
	})
	if err != nil {
		return nil, wrap(ErrMsgFailedToListThefts, err)
	}
	return records, nil
}

func (t *economyTx) InsertTheft(ctx context.Context, record *domain.TheftRecord) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO theft_records (thief_id, victim_id, card_id, stolen_at)
		VALUES ($1, $2, $3, $4)
		RETURNING theft_id`,
		record.ThiefID, record.VictimID, record.CardID, record.StolenAt).Scan(&record.ID)
	if err != nil {
		return wrap(ErrMsgFailedToInsertTheft, err)
	}
	return nil
}

func (t *economyTx) DeleteTheft(ctx context.Context, victimID string, recordID int64) (bool, error) {
	if !validUserID(victimID) {
		return false, nil
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM theft_records WHERE theft_id = $1 AND victim_id = $2`, recordID, victimID)
	if err != nil {
		return false, wrap(ErrMsgFailedToDeleteTheft, err)
	}
	return tag.RowsAffected() > 0, nil
}
