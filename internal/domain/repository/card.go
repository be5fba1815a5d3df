package repository

import (
	"context"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// CardRepository describes persistence operations with cards.
type CardRepository interface {
	// FindByMarker searches the whole board for a card whose title contains
	// the order-number marker.
	FindByMarker(ctx context.Context, boardID int64, marker string) (*model.Card, error)
	// MaxPosition returns the highest card position on the board, or false
	// when the board holds no cards.
	MaxPosition(ctx context.Context, boardID int64) (int64, bool, error)
	Create(ctx context.Context, card *model.Card) (*model.Card, error)
	Move(ctx context.Context, cardID, newColumnID int64) (*model.Card, error)
}
