package fixture

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CardHeist_Go/internal/database/memory"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// ErrInjected is the raw storage failure returned by fault-injecting stores
var ErrInjected = errors.New("injected storage failure")

// MockEconomy serves reads from a memory store and lets tests script BeginTx
type MockEconomy struct {
	*memory.Store
	mock.Mock
}

// NewMockEconomy wraps s; set expectations on BeginTx before use
func NewMockEconomy(s *memory.Store) *MockEconomy {
	return &MockEconomy{Store: s}
}

func (m *MockEconomy) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// FailingCommitStore opens real transactions whose Commit always fails
type FailingCommitStore struct {
	*memory.Store
}

func (f FailingCommitStore) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := f.Store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return failingCommitTx{EconomyTx: tx}, nil
}

type failingCommitTx struct {
	repository.EconomyTx
}

func (t failingCommitTx) Commit(ctx context.Context) error {
	_ = t.EconomyTx.Rollback(ctx)
	return ErrInjected
}
