package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
)

// domainErrors are returned by drivers for expected conditions and are never
// reclassified as storage failures
var domainErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrUsernameTaken,
	domain.ErrCardNotFound,
	domain.ErrStorageUnavailable,
}

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rollback after a successful commit is expected
		if err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}

// StorageError labels err with op and classifies unexpected failures as
// domain.ErrStorageUnavailable
func StorageError(op string, err error) error {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}
