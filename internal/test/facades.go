package test

import (
	"context"
	"sync"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// RoutingFacadeStub provides controllable behaviour for webhook and import
// endpoints.
type RoutingFacadeStub struct {
	CreatedFn func(context.Context, *model.Order) (*model.RouteResult, error)
	UpdatedFn func(context.Context, *model.Order) (*model.RouteResult, error)
	ImportFn  func(context.Context, time.Time) (*model.ImportSummary, error)

	mu          sync.Mutex
	ImportCalls []time.Time
}

// HandleOrderCreated delegates to the override or reports a created card.
func (s *RoutingFacadeStub) HandleOrderCreated(ctx context.Context, order *model.Order) (*model.RouteResult, error) {
	if s.CreatedFn != nil {
		return s.CreatedFn(ctx, order)
	}
	return &model.RouteResult{Action: model.RouteActionCreated, Column: "Ground", CardID: 1}, nil
}

// HandleOrderUpdated delegates to the override or reports a skip.
func (s *RoutingFacadeStub) HandleOrderUpdated(ctx context.Context, order *model.Order) (*model.RouteResult, error) {
	if s.UpdatedFn != nil {
		return s.UpdatedFn(ctx, order)
	}
	return &model.RouteResult{Action: model.RouteActionSkipped}, nil
}

// RunPolledImport records the invocation and delegates to the override.
func (s *RoutingFacadeStub) RunPolledImport(ctx context.Context, since time.Time) (*model.ImportSummary, error) {
	s.mu.Lock()
	s.ImportCalls = append(s.ImportCalls, since)
	s.mu.Unlock()
	if s.ImportFn != nil {
		return s.ImportFn(ctx, since)
	}
	return &model.ImportSummary{}, nil
}

// Calls returns a snapshot of recorded import invocations.
func (s *RoutingFacadeStub) Calls() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]time.Time, len(s.ImportCalls))
	copy(calls, s.ImportCalls)
	return calls
}

// CommerceClientStub satisfies the commerce platform client interface.
type CommerceClientStub struct {
	Order    *model.Order
	Orders   []model.Order
	FetchErr error
	ListErr  error
}

// FetchOrder returns the configured order or error.
func (s *CommerceClientStub) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	if s.Order != nil {
		return s.Order, nil
	}
	return &model.Order{ID: id}, nil
}

// ListOrdersUpdatedSince returns the configured order list or error.
func (s *CommerceClientStub) ListOrdersUpdatedSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Orders, nil
}
