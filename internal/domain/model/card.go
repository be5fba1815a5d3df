package model

import "time"

// Card represents one imported order on a board. Position is unique across
// the whole board and assigned as max+1 at creation, never reused.
type Card struct {
	ID          int64
	ColumnID    int64
	BoardID     int64
	Title       string
	Description string
	Position    int64
	OrderRef    string
	CreatedAt   time.Time
}

// Activity is an append-only audit entry attached to a card.
type Activity struct {
	ID        int64
	CardID    int64
	Message   string
	ActorID   *int64
	CreatedAt time.Time
}
