package model

import "time"

// Board is a named collection of ordered columns.
type Board struct {
	ID        int64
	Title     string
	OwnerID   *int64
	CreatedAt time.Time
}

// Column is a named, ordered list of cards within a board. Its title doubles
// as the classification target.
type Column struct {
	ID       int64
	BoardID  int64
	Title    string
	Position int
}
