package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// validUserID reports whether id can address a users row.
// Ids that are not UUIDs name no user.
func validUserID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validUserIDs drops ids that cannot address a users row
func validUserIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if validUserID(id) {
			out = append(out, id)
		}
	}
	return out
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrap labels err with msg. A transaction aborted by a concurrent writer
// is tagged as domain.ErrStorageUnavailable.
func wrap(msg string, err error) error {
	switch pgCode(err) {
	case PgErrorCodeDeadlockDetected, PgErrorCodeSerializationFailure:
		return fmt.Errorf("%w: %s: %s: %w", domain.ErrStorageUnavailable, ErrMsgTransactionAborted, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func userNotFound(userID string) error {
	return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
}
