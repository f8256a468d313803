package ledger

import (
	"context"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// Service exposes the read-side views of the ledger
type Service interface {
	ListFree(ctx context.Context, userID string) ([]domain.OwnedCard, error)
	ListCommitted(ctx context.Context, userID string) ([]domain.OwnedCard, error)
}

type service struct {
	repo   repository.InventoryReader
	ledger *Ledger
}

// NewService creates a read service over committed ledger state
func NewService(repo repository.InventoryReader, l *Ledger) Service {
	return &service{repo: repo, ledger: l}
}

func (s *service) ListFree(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	return s.ledger.ListFree(ctx, s.repo, userID)
}

func (s *service) ListCommitted(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	return s.ledger.ListCommitted(ctx, s.repo, userID)
}
