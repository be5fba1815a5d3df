package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
	"github.com/falconboard/boardflow/internal/usecase"
)

// OrderLister fetches orders changed since a timestamp from the commerce
// platform.
type OrderLister interface {
	ListOrdersUpdatedSince(ctx context.Context, since time.Time) ([]model.Order, error)
}

// RoutingFacade ties the configured routing pipelines and the commerce
// client together for HTTP handlers and the background poller.
type RoutingFacade struct {
	routers *usecase.Routers
	orders  OrderLister
	logger  *slog.Logger
}

// NewRoutingFacade constructs RoutingFacade.
func NewRoutingFacade(routers *usecase.Routers, orders OrderLister, logger *slog.Logger) *RoutingFacade {
	return &RoutingFacade{routers: routers, orders: orders, logger: logger}
}

// HandleOrderCreated routes a freshly created order through the shipping
// pipeline. Tags may still be missing right after checkout, so the pipeline
// is allowed to wait and refetch them.
func (f *RoutingFacade) HandleOrderCreated(ctx context.Context, order *model.Order) (*model.RouteResult, error) {
	return f.routers.Shipping.Route(ctx, order, true)
}

// HandleOrderUpdated routes an updated order through the standup pipeline.
// Updates carry current tags already, no waiting involved.
func (f *RoutingFacade) HandleOrderUpdated(ctx context.Context, order *model.Order) (*model.RouteResult, error) {
	return f.routers.Standup.Route(ctx, order, false)
}

// RunPolledImport sweeps orders updated since the timestamp through the
// shipping pipeline. Per-order failures are captured in the summary and do
// not abort the batch.
func (f *RoutingFacade) RunPolledImport(ctx context.Context, since time.Time) (*model.ImportSummary, error) {
	orders, err := f.orders.ListOrdersUpdatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	summary := &model.ImportSummary{Total: len(orders)}
	for i := range orders {
		order := &orders[i]
		detail := model.ImportDetail{OrderID: order.ID, OrderNumber: order.Number}

		result, err := f.routers.Shipping.Route(ctx, order, false)
		if err != nil {
			detail.Error = err.Error()
			f.logger.Error("import order failed",
				slog.Int64("order", order.Number),
				slog.String("error", err.Error()),
			)
		} else {
			detail.Action = result.Action
			detail.Column = result.Column
			detail.CardID = result.CardID
			if result.Action == model.RouteActionCreated {
				summary.Imported++
			}
		}

		summary.Details = append(summary.Details, detail)
	}

	return summary, nil
}
