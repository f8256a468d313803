package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

const userColumns = `user_id::text, username, next_drop_time, next_theft_time, connection_count, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.NextDropTime, &u.NextTheftTime, &u.ConnectionCount, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.NextDropTime = u.NextDropTime.UTC()
	u.NextTheftTime = u.NextTheftTime.UTC()
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

func (q queries) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	u, err := scanUser(q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID))
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUser, err)
	}
	return u, nil
}

func (q queries) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username))
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUserByUsername, err)
	}
	return u, nil
}

func (q queries) GetUsernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	ids := validUserIDs(userIDs)
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := q.db.Query(ctx, `SELECT user_id::text, username FROM users WHERE user_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUsernames, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, wrap(ErrMsgFailedToGetUsernames, err)
		}
		out[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(ErrMsgFailedToGetUsernames, err)
	}
	return out, nil
}

func (t *economyTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if !validUserID(userID) {
		return nil, nil
	}
	u, err := scanUser(t.tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR NO KEY UPDATE`, userID))
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUser, err)
	}
	return u, nil
}

func (t *economyTx) InsertUser(ctx context.Context, user *domain.User) error {
	if !validUserID(user.ID) {
		return fmt.Errorf("%w: user id must be a uuid", domain.ErrInvalidInput)
	}
	created := user.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO users (user_id, username, next_drop_time, next_theft_time, connection_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.NextDropTime, user.NextTheftTime, user.ConnectionCount, created)
	if pgCode(err) == PgErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
	}
	if err != nil {
		return wrap(ErrMsgFailedToInsertUser, err)
	}
	user.CreatedAt = created
	return nil
}

// DeleteUser removes the row; ledger, vault and theft rows cascade
func (t *economyTx) DeleteUser(ctx context.Context, userID string) (bool, error) {
	if !validUserID(userID) {
		return false, nil
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return false, wrap(ErrMsgFailedToDeleteUser, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *economyTx) UpdateNextDropTime(ctx context.Context, userID string, next time.Time) error {
	return t.updateCooldown(ctx, `UPDATE users SET next_drop_time = $2 WHERE user_id = $1`, userID, next)
}

func (t *economyTx) UpdateNextTheftTime(ctx context.Context, userID string, next time.Time) error {
	return t.updateCooldown(ctx, `UPDATE users SET next_theft_time = $2 WHERE user_id = $1`, userID, next)
}

func (t *economyTx) updateCooldown(ctx context.Context, sql, userID string, next time.Time) error {
	if !validUserID(userID) {
		return userNotFound(userID)
	}
	tag, err := t.tx.Exec(ctx, sql, userID, next)
	if err != nil {
		return wrap(ErrMsgFailedToUpdateCooldown, err)
	}
	if tag.RowsAffected() == 0 {
		return userNotFound(userID)
	}
	return nil
}

func (t *economyTx) IncrementConnectionCount(ctx context.Context, userID string) (int, error) {
	if !validUserID(userID) {
		return 0, userNotFound(userID)
	}
	var count int
	err := t.tx.QueryRow(ctx,
		`UPDATE users SET connection_count = connection_count + 1 WHERE user_id = $1 RETURNING connection_count`,
		userID).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, userNotFound(userID)
	}
	if err != nil {
		return 0, wrap(ErrMsgFailedToCountConnection, err)
	}
	return count, nil
}

func (t *economyTx) ListOtherUserIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := t.tx.Query(ctx, `SELECT user_id::text FROM users WHERE user_id::text <> $1 ORDER BY user_id`, userID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListUsers, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrap(ErrMsgFailedToListUsers, err)
	}
	return ids, nil
}
