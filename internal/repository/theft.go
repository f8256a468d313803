package repository

import (
	"context"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// TheftReader reads theft records, newest first
type TheftReader interface {
	ListTheftsByVictim(ctx context.Context, victimID string) ([]domain.TheftRecord, error)
}

// TheftTx mutates theft records inside a transaction
type TheftTx interface {
	TheftReader
	// InsertTheft stores the record and sets its ID
	InsertTheft(ctx context.Context, record *domain.TheftRecord) error
	// DeleteTheft removes a record only when it belongs to victimID
	DeleteTheft(ctx context.Context, victimID string, recordID int64) (bool, error)
}
