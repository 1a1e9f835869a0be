package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// OutboxFacade exposes the subset of application functionality required by the dispatcher.
type OutboxFacade interface {
	PickOutboxBatch(ctx context.Context, limit int) ([]model.EmailMessage, error)
	DispatchOutboxMessage(ctx context.Context, msg model.EmailMessage) error
}

// OutboxDispatcher polls the email outbox and delivers messages concurrently.
type OutboxDispatcher struct {
	facade       OutboxFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.EmailMessage
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOutboxDispatcher constructs outbox dispatcher worker pool.
func NewOutboxDispatcher(facade OutboxFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OutboxDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OutboxDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.EmailMessage, batchSize*workers),
	}
}

// Start launches background dispatching.
func (d *OutboxDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *OutboxDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *OutboxDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *OutboxDispatcher) fetchAndDispatch(ctx context.Context) {
	messages, err := d.facade.PickOutboxBatch(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch outbox batch failed", slog.String("error", err.Error()))
		return
	}
	for _, msg := range messages {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- msg:
		}
	}
}

func (d *OutboxDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.jobs:
			if !ok {
				return
			}
			if err := d.facade.DispatchOutboxMessage(ctx, msg); err != nil {
				d.logger.Error("dispatch outbox message failed",
					slog.String("message_id", msg.ID), slog.String("error", err.Error()))
			}
		}
	}
}
