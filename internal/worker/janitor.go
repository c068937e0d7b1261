package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	PrunePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor periodically removes PENDING orders that were never paid for.
// Confirmed orders are never touched.
type Janitor struct {
	facade     StorefrontFacade
	interval   time.Duration
	pendingTTL time.Duration
	logger     *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewJanitor constructs the background sweeper. A non-positive pendingTTL
// disables it entirely.
func NewJanitor(facade StorefrontFacade, interval, pendingTTL time.Duration, logger *slog.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{
		facade:     facade,
		interval:   interval,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

// Start launches the sweep loop.
func (j *Janitor) Start(ctx context.Context) {
	if j.pendingTTL <= 0 {
		j.logger.Info("pending order pruning disabled")
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *Janitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.pendingTTL)
	dropped, err := j.facade.PrunePendingBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("pending order sweep failed", slog.String("error", err.Error()))
		return
	}
	if dropped > 0 {
		j.logger.Info("pruned abandoned pending orders",
			slog.Int64("count", dropped),
			slog.Time("cutoff", cutoff),
		)
	}
}
