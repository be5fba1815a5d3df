package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/falconboard/boardflow/internal/adapter/shopify"
	"github.com/falconboard/boardflow/internal/domain/model"
	testhelpers "github.com/falconboard/boardflow/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewImportPollerDefaults(t *testing.T) {
	poller := NewImportPoller(&testhelpers.RoutingFacadeStub{}, 0, 0, discardLogger())
	if poller.interval != time.Minute {
		t.Fatalf("expected interval default, got %v", poller.interval)
	}
	if poller.lookback != time.Hour {
		t.Fatalf("expected lookback default, got %v", poller.lookback)
	}
}

func waitForCalls(t *testing.T, facade *testhelpers.RoutingFacadeStub, n int) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		if len(facade.Calls()) >= n {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for %d import calls", n)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestImportPollerSweepsAndAdvancesWatermark(t *testing.T) {
	facade := &testhelpers.RoutingFacadeStub{ImportFn: func(context.Context, time.Time) (*model.ImportSummary, error) {
		return &model.ImportSummary{Imported: 1, Total: 1}, nil
	}}
	poller := NewImportPoller(facade, 10*time.Millisecond, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	start := time.Now()
	poller.Start(ctx)
	waitForCalls(t, facade, 2)
	poller.Stop()

	calls := facade.Calls()
	if calls[0].After(start.Add(-time.Hour + time.Minute)) {
		t.Fatalf("first sweep should reach lookback into the past, got %v", calls[0])
	}
	if !calls[1].After(calls[0]) {
		t.Fatalf("watermark did not advance: %v then %v", calls[0], calls[1])
	}
}

func TestImportPollerKeepsWatermarkOnFailure(t *testing.T) {
	attempts := int32(0)
	facade := &testhelpers.RoutingFacadeStub{ImportFn: func(context.Context, time.Time) (*model.ImportSummary, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return nil, errors.New("api down")
		}
		return &model.ImportSummary{}, nil
	}}
	poller := NewImportPoller(facade, 5*time.Millisecond, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)
	waitForCalls(t, facade, 2)
	poller.Stop()

	calls := facade.Calls()
	if !calls[1].Equal(calls[0]) {
		t.Fatalf("failed sweep must not advance the watermark: %v then %v", calls[0], calls[1])
	}
}

func TestImportPollerHandlesRateLimiting(t *testing.T) {
	attempts := int32(0)
	facade := &testhelpers.RoutingFacadeStub{ImportFn: func(context.Context, time.Time) (*model.ImportSummary, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return nil, shopify.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}
		}
		return &model.ImportSummary{}, nil
	}}
	poller := NewImportPoller(facade, 5*time.Millisecond, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)
	waitForCalls(t, facade, 2)
	poller.Stop()

	calls := facade.Calls()
	if !calls[1].Equal(calls[0]) {
		t.Fatalf("rate limited sweep must not advance the watermark: %v then %v", calls[0], calls[1])
	}
}

func TestImportPollerStopWithoutStart(t *testing.T) {
	poller := NewImportPoller(&testhelpers.RoutingFacadeStub{}, time.Second, time.Hour, discardLogger())
	poller.Stop()
}
