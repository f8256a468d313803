package notification

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/worker"
)

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Notify(ctx context.Context, userID string, payload any) error {
	args := m.Called(ctx, userID, payload)
	return args.Error(0)
}

type MockLister struct {
	mock.Mock
}

func (m *MockLister) List(ctx context.Context, victimID string) ([]domain.TheftNotification, error) {
	args := m.Called(ctx, victimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TheftNotification), args.Error(1)
}

// syncEnqueuer runs jobs inline so tests observe delivery before returning
type syncEnqueuer struct {
	accept bool
	errs   []error
}

func (s *syncEnqueuer) Enqueue(job worker.Job) bool {
	if !s.accept {
		return false
	}
	s.errs = append(s.errs, job.Process(context.Background()))
	return true
}
