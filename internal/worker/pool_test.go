package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CardHeist_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool_DrainsQueueOnStop(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	for i := 0; i < 5; i++ {
		assert.True(t, pool.Enqueue(job))
	}
	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_FullQueueRejects(t *testing.T) {
	// not started, so nothing consumes the queue
	pool := NewPool(1, 1)
	noop := JobFunc(func(context.Context) error { return nil })

	assert.True(t, pool.Enqueue(noop))
	assert.False(t, pool.Enqueue(noop))

	pool.Start()
	pool.Stop()
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 4)
	pool.Start()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})
	pool.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_JobContextHasDeadline(t *testing.T) {
	var hasDeadline atomic.Bool
	pool := NewPool(1, 1)
	pool.Start()
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hasDeadline.Store(ok)
		return nil
	}))
	pool.Stop()

	assert.True(t, hasDeadline.Load())
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(8, 4)
	pool.Start()
	pool.Stop()

	checker.Check(0)
}
