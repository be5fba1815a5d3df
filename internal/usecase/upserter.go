package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
	"github.com/falconboard/boardflow/internal/domain/repository"
)

// OrderMarker renders the de-duplication key embedded in card titles.
func OrderMarker(orderNumber int64) string {
	return fmt.Sprintf("#%d", orderNumber)
}

// CardUpserter creates or relocates the single card representing one order.
// The operation is safe to repeat indefinitely under at-least-once webhook
// delivery: a second call with the same inputs never produces a second card
// and never undoes a relocation that already happened.
type CardUpserter struct {
	cards      repository.CardRepository
	recorder   *ActivityRecorder
	moveWindow time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewCardUpserter constructs CardUpserter. moveWindow bounds the "tags
// arrived late and we mis-filed it" correction: an existing card is only
// relocated while younger than the window.
func NewCardUpserter(cards repository.CardRepository, recorder *ActivityRecorder, moveWindow time.Duration, logger *slog.Logger) *CardUpserter {
	if moveWindow <= 0 {
		moveWindow = time.Minute
	}
	return &CardUpserter{
		cards:      cards,
		recorder:   recorder,
		moveWindow: moveWindow,
		now:        time.Now,
		logger:     logger,
	}
}

// Upsert files the order's card into the target column. The existing-card
// search spans the whole board, not just the target column.
func (u *CardUpserter) Upsert(ctx context.Context, column *model.Column, orderNumber int64, title, description string) (*model.RouteResult, error) {
	marker := OrderMarker(orderNumber)

	existing, err := u.cards.FindByMarker(ctx, column.BoardID, marker)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return u.reconcile(ctx, existing, column, marker)
	}

	var next int64
	if max, ok, err := u.cards.MaxPosition(ctx, column.BoardID); err != nil {
		return nil, err
	} else if ok {
		next = max + 1
	}

	created, err := u.cards.Create(ctx, &model.Card{
		ColumnID:    column.ID,
		BoardID:     column.BoardID,
		Title:       title,
		Description: description,
		Position:    next,
		OrderRef:    marker,
	})
	if err != nil {
		// A concurrent delivery may have won the creation race; the unique
		// order_ref index surfaces it here and the earlier card stands.
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			if existing, findErr := u.cards.FindByMarker(ctx, column.BoardID, marker); findErr == nil {
				return u.reconcile(ctx, existing, column, marker)
			}
		}
		return nil, err
	}

	u.recorder.Record(ctx, created.ID, fmt.Sprintf("Order %s automatically imported to %s", marker, column.Title))
	return &model.RouteResult{Action: model.RouteActionCreated, Column: column.Title, CardID: created.ID}, nil
}

func (u *CardUpserter) reconcile(ctx context.Context, existing *model.Card, column *model.Column, marker string) (*model.RouteResult, error) {
	if existing.ColumnID == column.ID {
		return &model.RouteResult{Action: model.RouteActionExists, Column: column.Title, CardID: existing.ID}, nil
	}

	age := u.now().Sub(existing.CreatedAt)
	if age >= u.moveWindow {
		// Once a card has aged past the window a human may be working on it;
		// leave it where it is rather than oscillate.
		u.logger.Info("card already triaged, not moving",
			slog.String("marker", marker),
			slog.Int64("card_id", existing.ID),
			slog.Duration("age", age),
		)
		return &model.RouteResult{Action: model.RouteActionExists, Column: column.Title, CardID: existing.ID}, nil
	}

	moved, err := u.cards.Move(ctx, existing.ID, column.ID)
	if err != nil {
		return nil, err
	}
	u.recorder.Record(ctx, moved.ID, fmt.Sprintf("Order %s moved to %s after late tag update", marker, column.Title))
	return &model.RouteResult{Action: model.RouteActionMoved, Column: column.Title, CardID: moved.ID}, nil
}
