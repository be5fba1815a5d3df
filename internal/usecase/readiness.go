package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// OrderSource re-fetches an order from the commerce platform by identifier.
type OrderSource interface {
	FetchOrder(ctx context.Context, id int64) (*model.Order, error)
}

// RefetchPolicy controls the delay-then-refetch applied when a webhook
// delivery races the platform's asynchronous tag enrichment.
type RefetchPolicy struct {
	Delay       time.Duration
	MaxAttempts int
}

// TagWaiter suspends a single delivery while tag enrichment catches up,
// then re-fetches the order and substitutes the refreshed tag set. The wait
// holds no locks; concurrent deliveries are unaffected.
type TagWaiter struct {
	source OrderSource
	policy RefetchPolicy
	sleep  func(context.Context, time.Duration)
	logger *slog.Logger
}

// NewTagWaiter constructs a waiter with context-aware sleeping.
func NewTagWaiter(source OrderSource, policy RefetchPolicy, logger *slog.Logger) *TagWaiter {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.Delay <= 0 {
		policy.Delay = 30 * time.Second
	}
	return &TagWaiter{
		source: source,
		policy: policy,
		sleep:  sleepContext,
		logger: logger,
	}
}

// Await returns a refreshed tag set for the order. A failed re-fetch is not
// fatal: the stale set already in hand is returned and processing proceeds.
func (w *TagWaiter) Await(ctx context.Context, orderID int64, tags []string) []string {
	for attempt := 0; attempt < w.policy.MaxAttempts; attempt++ {
		w.sleep(ctx, w.policy.Delay)

		refreshed, err := w.source.FetchOrder(ctx, orderID)
		if err != nil {
			w.logger.Warn("tag readiness re-fetch failed, using stale tags",
				slog.Int64("order_id", orderID),
				slog.String("error", err.Error()),
			)
			return tags
		}

		if next := NormalizeTags(refreshed.Tags); len(next) > 0 {
			return next
		}
	}
	return tags
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
