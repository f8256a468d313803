// Package postgres implements the economy repositories on pgx. Mutations run
// inside a pgx.Tx and lock the rows they read with SELECT ... FOR UPDATE.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardHeist_Go/internal/repository"
)

// Repository reads through the pool and opens economy transactions
type Repository struct {
	queries
	pool *pgxpool.Pool
}

var (
	_ repository.Economy   = (*Repository)(nil)
	_ repository.Catalog   = (*Repository)(nil)
	_ repository.EconomyTx = (*economyTx)(nil)
)

// NewRepository creates a new postgres repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{queries: queries{db: pool}, pool: pool}
}

// BeginTx starts a read-committed transaction
func (r *Repository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &economyTx{queries: queries{db: tx}, tx: tx}, nil
}

// CheckHealth pings the database
func (r *Repository) CheckHealth(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// queries holds the statements shared by pool reads and transactions
type queries struct {
	db querier
}

type economyTx struct {
	queries
	tx pgx.Tx
}

func (t *economyTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback returns pgx.ErrTxClosed after Commit
func (t *economyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
