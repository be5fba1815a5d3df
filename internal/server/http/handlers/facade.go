package handlers

import (
	"context"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// RoutingFacade describes order routing operations exposed via HTTP.
type RoutingFacade interface {
	HandleOrderCreated(ctx context.Context, order *model.Order) (*model.RouteResult, error)
	HandleOrderUpdated(ctx context.Context, order *model.Order) (*model.RouteResult, error)
	RunPolledImport(ctx context.Context, since time.Time) (*model.ImportSummary, error)
}

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
