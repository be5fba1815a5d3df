package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
	testhelpers "github.com/falconboard/boardflow/internal/test"
	"github.com/falconboard/boardflow/internal/usecase"
)

type listerStub struct {
	orders []model.Order
	err    error
	since  []time.Time
}

func (s *listerStub) ListOrdersUpdatedSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	s.since = append(s.since, since)
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func newFacadeFixture(t *testing.T, lister OrderLister) (*RoutingFacade, *testhelpers.CardRepositoryStub) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	boards := &testhelpers.BoardRepositoryStub{
		BoardList: []model.Board{
			{ID: 1, Title: "Orders", CreatedAt: created},
			{ID: 2, Title: "Daily Standup", CreatedAt: created.Add(time.Hour)},
		},
		Columns: map[int64][]model.Column{
			1: {
				{ID: 10, BoardID: 1, Title: "Priority", Position: 0},
				{ID: 11, BoardID: 1, Title: "Ground", Position: 1},
			},
			2: {
				{ID: 20, BoardID: 2, Title: "Alice", Position: 0},
			},
		},
	}
	cards := testhelpers.NewCardRepositoryStub()
	activities := &testhelpers.ActivityRepositoryStub{}

	resolver := usecase.NewResolver(boards, logger)
	recorder := usecase.NewActivityRecorder(activities, logger)
	upserter := usecase.NewCardUpserter(cards, recorder, time.Minute, logger)

	shipping := usecase.NewOrderRouter(usecase.RouterOptions{
		Table:       usecase.DefaultShippingTable(),
		BoardPolicy: usecase.EarliestBoard(),
		EmptyTags:   usecase.EmptyTagSkip,
	}, resolver, upserter, logger)

	tagMap := usecase.TagMapTable{"alice": "Alice"}
	standup := usecase.NewOrderRouter(usecase.RouterOptions{
		Table:       tagMap,
		BoardPolicy: usecase.BoardByTitle("Daily Standup"),
		EmptyTags:   usecase.EmptyTagSkip,
	}, resolver, upserter, logger)

	routers := &usecase.Routers{Shipping: shipping, Standup: standup}
	return NewRoutingFacade(routers, lister, logger), cards
}

func TestHandleOrderCreated(t *testing.T) {
	facade, cards := newFacadeFixture(t, &listerStub{})

	order := &model.Order{ID: 100100, Number: 1001, Tags: "priority"}
	result, err := facade.HandleOrderCreated(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != model.RouteActionCreated || result.Column != "Priority" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(cards.Cards) != 1 || cards.Cards[0].ColumnID != 10 {
		t.Fatalf("unexpected cards: %+v", cards.Cards)
	}
}

func TestHandleOrderUpdated(t *testing.T) {
	facade, cards := newFacadeFixture(t, &listerStub{})

	order := &model.Order{ID: 100200, Number: 1002, Tags: "Alice, priority"}
	result, err := facade.HandleOrderUpdated(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != model.RouteActionCreated || result.Column != "Alice" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(cards.Cards) != 1 || cards.Cards[0].BoardID != 2 {
		t.Fatalf("unexpected cards: %+v", cards.Cards)
	}
}

func TestRunPolledImport(t *testing.T) {
	lister := &listerStub{orders: []model.Order{
		{ID: 100100, Number: 1001, Tags: "express"},
		{ID: 100200, Number: 1002, Tags: ""},
		{ID: 100300, Number: 1003, Tags: "ground"},
	}}
	facade, cards := newFacadeFixture(t, lister)

	since := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	summary, err := facade.RunPolledImport(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lister.since) != 1 || !lister.since[0].Equal(since) {
		t.Fatalf("unexpected lister calls: %v", lister.since)
	}
	if summary.Total != 3 || summary.Imported != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Details) != 3 {
		t.Fatalf("expected three details, got %d", len(summary.Details))
	}
	// Express has no matching column on the board, so the first order fails
	// while the rest of the batch still lands.
	if summary.Details[0].Error == "" {
		t.Fatalf("expected missing-column error: %+v", summary.Details[0])
	}
	if summary.Details[1].Action != model.RouteActionSkipped {
		t.Fatalf("expected empty-tag order to be skipped: %+v", summary.Details[1])
	}
	if summary.Details[2].Action != model.RouteActionCreated || summary.Details[2].Column != "Ground" {
		t.Fatalf("unexpected detail: %+v", summary.Details[2])
	}
	if len(cards.Cards) != 1 {
		t.Fatalf("expected one card created, got %d", len(cards.Cards))
	}
}

func TestRunPolledImportCapturesPerOrderErrors(t *testing.T) {
	lister := &listerStub{orders: []model.Order{
		{ID: 100100, Number: 1001, Tags: "pickup"},
		{ID: 100200, Number: 1002, Tags: "ground"},
	}}
	facade, _ := newFacadeFixture(t, lister)

	summary, err := facade.RunPolledImport(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Imported != 1 {
		t.Fatalf("expected one imported, got %d", summary.Imported)
	}
	if summary.Details[0].Error == "" {
		t.Fatal("expected missing-column error to be captured")
	}
	if summary.Details[1].Action != model.RouteActionCreated {
		t.Fatalf("expected second order to land: %+v", summary.Details[1])
	}
}

func TestRunPolledImportListError(t *testing.T) {
	lister := &listerStub{err: errors.New("api down")}
	facade, _ := newFacadeFixture(t, lister)

	if _, err := facade.RunPolledImport(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
