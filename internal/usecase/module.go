package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/falconboard/boardflow/internal/config"
	"github.com/falconboard/boardflow/internal/domain/repository"
)

// Module provides the routing core to the fx container.
var Module = fx.Provide(
	NewResolver,
	NewActivityRecorder,
	newUpserter,
	newWaiter,
	newRouters,
)

type upserterParams struct {
	fx.In

	Cards    repository.CardRepository
	Recorder *ActivityRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

func newUpserter(p upserterParams) *CardUpserter {
	return NewCardUpserter(p.Cards, p.Recorder, p.Config.CardMoveWindow, p.Logger)
}

type waiterParams struct {
	fx.In

	Source OrderSource
	Config *config.Config
	Logger *slog.Logger
}

func newWaiter(p waiterParams) *TagWaiter {
	return NewTagWaiter(p.Source, RefetchPolicy{
		Delay:       p.Config.TagReadinessDelay,
		MaxAttempts: p.Config.TagRefetchAttempts,
	}, p.Logger)
}

// Routers bundles the two configured pipeline instances: the shipping
// router fed by order-created webhooks and the polled import, and the
// standup router fed by order-updated webhooks.
type Routers struct {
	Shipping *OrderRouter
	Standup  *OrderRouter
}

type routersParams struct {
	fx.In

	Config   *config.Config
	Resolver *Resolver
	Upserter *CardUpserter
	Waiter   *TagWaiter
	Logger   *slog.Logger
}

func newRouters(p routersParams) (*Routers, error) {
	shippingPolicy := EarliestBoard()
	if p.Config.BoardID != 0 {
		shippingPolicy = ExplicitBoard(p.Config.BoardID)
	}

	shipping := NewOrderRouter(RouterOptions{
		Table:       DefaultShippingTable(),
		BoardPolicy: shippingPolicy,
		EmptyTags:   EmptyTagPolicy(p.Config.EmptyTagPolicy),
		Waiter:      p.Waiter,
	}, p.Resolver, p.Upserter, p.Logger)

	tagMap, err := ParseTagMap(p.Config.StandupTagMap)
	if err != nil {
		return nil, err
	}

	standup := NewOrderRouter(RouterOptions{
		Table:       tagMap,
		BoardPolicy: BoardByTitle(p.Config.StandupBoardTitle),
		EmptyTags:   EmptyTagSkip,
	}, p.Resolver, p.Upserter, p.Logger)

	return &Routers{Shipping: shipping, Standup: standup}, nil
}
