package repository

import (
	"context"
	"time"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// UserReader reads user rows. Missing users are returned as nil, nil.
type UserReader interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUsernames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// UserTx mutates user rows inside a transaction
type UserTx interface {
	UserReader
	// GetUserForUpdate locks the user row until the transaction ends. The lock
	// must not block foreign-key checks from rows that reference the user.
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	InsertUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, userID string) (bool, error)
	UpdateNextDropTime(ctx context.Context, userID string, t time.Time) error
	UpdateNextTheftTime(ctx context.Context, userID string, t time.Time) error
	IncrementConnectionCount(ctx context.Context, userID string) (int, error)
	ListOtherUserIDs(ctx context.Context, userID string) ([]string, error)
}
