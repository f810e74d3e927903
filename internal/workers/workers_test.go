package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker блокируется до отмены контекста и отмечает запуск/выход.
type blockingWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Store(true)
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestWorkers_RunAllAndStopOnCancel(t *testing.T) {
	first := &blockingWorker{}
	second := &blockingWorker{}

	pool := &Workers{}
	pool.Add(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return first.started.Load() && second.started.Load()
	}, time.Second, 5*time.Millisecond, "оба воркера должны стартовать")

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run не вернулся после отмены контекста")
	}
	assert.True(t, first.stopped.Load())
	assert.True(t, second.stopped.Load())
}

func TestWorkers_RunWithoutWorkers(t *testing.T) {
	pool := &Workers{}

	done := make(chan struct{})
	go func() {
		pool.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("пустой пул должен завершаться сразу")
	}
}
