package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/falconboard/boardflow/internal/adapter/shopify"
	"github.com/falconboard/boardflow/internal/domain/model"
)

// RoutingFacade exposes the subset of application functionality required by the poller.
type RoutingFacade interface {
	RunPolledImport(ctx context.Context, since time.Time) (*model.ImportSummary, error)
}

// ImportPoller periodically sweeps recently updated orders so deliveries
// missed by webhooks still reach the board.
type ImportPoller struct {
	facade   RoutingFacade
	interval time.Duration
	lookback time.Duration
	logger   *slog.Logger
	now      func() time.Time

	since  time.Time
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewImportPoller constructs the poller. The first sweep reaches lookback
// into the past; every successful sweep advances the watermark.
func NewImportPoller(facade RoutingFacade, interval, lookback time.Duration, logger *slog.Logger) *ImportPoller {
	if interval <= 0 {
		interval = time.Minute
	}
	if lookback <= 0 {
		lookback = time.Hour
	}
	return &ImportPoller{
		facade:   facade,
		interval: interval,
		lookback: lookback,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches background polling.
func (p *ImportPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.since = p.now().Add(-p.lookback)

	p.wg.Add(1)
	go p.run(runCtx)
}

// Stop waits for the polling loop to finish.
func (p *ImportPoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ImportPoller) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *ImportPoller) sweep(ctx context.Context) {
	start := p.now()
	summary, err := p.facade.RunPolledImport(ctx, p.since)
	if err != nil {
		var rateLimited shopify.TooManyRequestsError
		if errors.As(err, &rateLimited) {
			p.logger.Warn("commerce api rate limited", slog.Duration("retry_after", rateLimited.RetryAfter))
			return
		}
		p.logger.Error("polled import failed", slog.String("error", err.Error()))
		return
	}

	// Watermark advances only after a clean sweep so failed windows are retried.
	p.since = start

	if summary.Total > 0 {
		p.logger.Info("polled import finished",
			slog.Int("imported", summary.Imported),
			slog.Int("total", summary.Total),
		)
	}
}
