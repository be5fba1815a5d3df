package repository

import (
	"context"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// ActivityRepository appends audit entries to cards.
type ActivityRepository interface {
	Append(ctx context.Context, cardID int64, message string, actorID *int64) (*model.Activity, error)
}
