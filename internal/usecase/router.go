package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
)

// EmptyTagPolicy decides what happens when the tag set is still empty after
// the readiness wait. The source deployments never converged on one answer,
// so it stays configuration.
type EmptyTagPolicy string

const (
	// EmptyTagDefault files the order under the table's fallback column.
	EmptyTagDefault EmptyTagPolicy = "default"
	// EmptyTagSkip drops the order without creating anything.
	EmptyTagSkip EmptyTagPolicy = "skip"
	// EmptyTagRetry fails transiently so the sender redelivers later.
	EmptyTagRetry EmptyTagPolicy = "retry"
)

// RouterOptions bundles the deployment-configurable policies of one router
// instance.
type RouterOptions struct {
	Table       Classifier
	BoardPolicy BoardSelectionPolicy
	EmptyTags   EmptyTagPolicy
	// Waiter, when set, engages the delay-then-refetch for empty tag sets
	// on the webhook path. The polled import path never waits.
	Waiter *TagWaiter
}

// OrderRouter runs the classify, resolve, upsert, record pipeline for one
// order. Each invocation is an independent unit of work; the only
// suspension point is the readiness wait.
type OrderRouter struct {
	opts     RouterOptions
	resolver *Resolver
	upserter *CardUpserter
	logger   *slog.Logger
}

// NewOrderRouter constructs OrderRouter.
func NewOrderRouter(opts RouterOptions, resolver *Resolver, upserter *CardUpserter, logger *slog.Logger) *OrderRouter {
	return &OrderRouter{opts: opts, resolver: resolver, upserter: upserter, logger: logger}
}

// Route classifies the order and files its card. awaitTags enables the
// readiness wait for empty tag sets; webhook deliveries pass true, polled
// imports pass false.
func (r *OrderRouter) Route(ctx context.Context, order *model.Order, awaitTags bool) (*model.RouteResult, error) {
	tags := NormalizeTags(order.Tags)
	if len(tags) == 0 && awaitTags && r.opts.Waiter != nil {
		tags = r.opts.Waiter.Await(ctx, order.ID, tags)
	}

	target, ok := r.opts.Table.Classify(tags)
	if !ok {
		if len(tags) == 0 {
			switch r.opts.EmptyTags {
			case EmptyTagRetry:
				return nil, domainErrors.ErrTagsNotReady
			case EmptyTagDefault:
				if fallback, has := r.opts.Table.Fallback(); has {
					target = fallback
					break
				}
				fallthrough
			default:
				return r.skip(order, "empty tag set"), nil
			}
		} else {
			// Non-empty but unmapped: only the tag-map table ends up here,
			// and unmapped orders are skipped silently.
			return r.skip(order, "no mapped tag"), nil
		}
	}

	board, err := r.resolver.ResolveBoard(ctx, r.opts.BoardPolicy)
	if err != nil {
		return nil, err
	}
	column, err := r.resolver.ResolveColumn(ctx, board.ID, target)
	if err != nil {
		return nil, err
	}

	return r.upserter.Upsert(ctx, column, order.Number, CardTitle(order), CardDescription(order, target))
}

func (r *OrderRouter) skip(order *model.Order, reason string) *model.RouteResult {
	r.logger.Info("order skipped",
		slog.Int64("order_number", order.Number),
		slog.String("reason", reason),
	)
	return &model.RouteResult{Action: model.RouteActionSkipped}
}
