// Package notification pushes a victim's theft log to them after a theft
// commits. Delivery runs on a worker pool so it never holds a transaction
// open and its failures never reach the thief.
package notification

import (
	"context"
	"errors"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/worker"
)

// ErrNoListener is returned by a Sink that has no open channel to the user
var ErrNoListener = errors.New("no listener for user")

// Sink delivers a payload to one user
type Sink interface {
	Notify(ctx context.Context, userID string, payload any) error
}

// Lister reads a victim's notification list
type Lister interface {
	List(ctx context.Context, victimID string) ([]domain.TheftNotification, error)
}

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// TheftsPayload is the body pushed to a victim
type TheftsPayload struct {
	Notifications []domain.TheftNotification `json:"notifications"`
}

// Dispatcher turns committed thefts into queued Sink deliveries
type Dispatcher struct {
	pool   Enqueuer
	lister Lister
	sink   Sink
}

// NewDispatcher creates a dispatcher that enqueues onto pool
func NewDispatcher(pool Enqueuer, lister Lister, sink Sink) *Dispatcher {
	return &Dispatcher{pool: pool, lister: lister, sink: sink}
}

// TheftCommitted queues a push of victimID's full notification list
func (d *Dispatcher) TheftCommitted(ctx context.Context, victimID string) {
	job := &theftJob{
		dispatcher: d,
		victimID:   victimID,
		requestID:  logger.GetRequestID(ctx),
	}
	if !d.pool.Enqueue(job) {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeDropped).Inc()
		logger.FromContext(ctx).Warn(LogMsgQueueFull, "victim_id", victimID)
	}
}

// Push loads and delivers victimID's list synchronously
func (d *Dispatcher) Push(ctx context.Context, victimID string) error {
	log := logger.FromContext(ctx)

	list, err := d.lister.List(ctx, victimID)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Warn(LogMsgListFailed, "victim_id", victimID, "error", err)
		return err
	}

	err = d.sink.Notify(ctx, victimID, TheftsPayload{Notifications: list})
	switch {
	case errors.Is(err, ErrNoListener):
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeNoListener).Inc()
		log.Debug(LogMsgNoListener, "victim_id", victimID)
		return nil
	case err != nil:
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Warn(LogMsgDeliveryFailed, "victim_id", victimID, "error", err)
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeDelivered).Inc()
	log.Debug(LogMsgDelivered, "victim_id", victimID, "count", len(list))
	return nil
}

type theftJob struct {
	dispatcher *Dispatcher
	victimID   string
	requestID  string
}

func (j *theftJob) Process(ctx context.Context) error {
	if j.requestID != "" {
		ctx = logger.WithRequestID(ctx, j.requestID)
	}
	return j.dispatcher.Push(ctx, j.victimID)
}
