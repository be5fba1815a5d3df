package usecase

import (
	"context"
	"log/slog"

	"github.com/falconboard/boardflow/internal/domain/repository"
)

// ActivityRecorder appends one audit entry per routing decision. Recording
// is best effort: a failure is logged and never rolls back the card
// mutation that already succeeded.
type ActivityRecorder struct {
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewActivityRecorder constructs ActivityRecorder.
func NewActivityRecorder(activities repository.ActivityRepository, logger *slog.Logger) *ActivityRecorder {
	return &ActivityRecorder{activities: activities, logger: logger}
}

// Record appends a message to the card's activity trail, attributed to the
// context actor when one is present.
func (r *ActivityRecorder) Record(ctx context.Context, cardID int64, message string) {
	if _, err := r.activities.Append(ctx, cardID, message, ActorFrom(ctx)); err != nil {
		r.logger.Error("append activity failed",
			slog.Int64("card_id", cardID),
			slog.String("message", message),
			slog.String("error", err.Error()),
		)
	}
}
