package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// ListCards returns the stored catalog ordered by id
func (r *Repository) ListCards(ctx context.Context) ([]domain.Card, error) {
	rows, err := r.pool.Query(ctx, `SELECT card_id, card_name, rarity FROM cards ORDER BY card_id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCards, err)
	}
	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Card, error) {
		var c domain.Card
		var rarity string
		err := row.Scan(&c.ID, &c.Name, &rarity)
		c.Rarity = domain.Rarity(rarity)
		return c, err
	})
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCards, err)
	}
	return cards, nil
}

// UpsertCards inserts or renames cards in one batch
func (r *Repository) UpsertCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(`
			INSERT INTO cards (card_id, card_name, rarity) VALUES ($1, $2, $3)
			ON CONFLICT (card_id) DO UPDATE SET card_name = EXCLUDED.card_name, rarity = EXCLUDED.rarity`,
			c.ID, c.Name, string(c.Rarity))
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return wrap(ErrMsgFailedToUpsertCards, err)
	}
	return nil
}
