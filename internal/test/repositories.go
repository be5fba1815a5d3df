package test

import (
	"context"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
)

// BoardRepositoryStub stores boards and columns in-memory for tests.
type BoardRepositoryStub struct {
	BoardList []model.Board
	Columns   map[int64][]model.Column
	Err       error
}

// GetByID returns a stored board by id or ErrNotFound.
func (s *BoardRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.BoardList {
		if s.BoardList[i].ID == id {
			board := s.BoardList[i]
			return &board, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindEarliest returns the board with the oldest creation time.
func (s *BoardRepositoryStub) FindEarliest(ctx context.Context) (*model.Board, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var earliest *model.Board
	for i := range s.BoardList {
		if earliest == nil || s.BoardList[i].CreatedAt.Before(earliest.CreatedAt) {
			earliest = &s.BoardList[i]
		}
	}
	if earliest == nil {
		return nil, domainErrors.ErrNotFound
	}
	board := *earliest
	return &board, nil
}

// FindByTitle returns the first stored board with an exact title match.
func (s *BoardRepositoryStub) FindByTitle(ctx context.Context, title string) (*model.Board, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.BoardList {
		if s.BoardList[i].Title == title {
			board := s.BoardList[i]
			return &board, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ColumnsOf returns the configured columns of a board.
func (s *BoardRepositoryStub) ColumnsOf(ctx context.Context, boardID int64) ([]model.Column, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Columns[boardID], nil
}

// CardRepositoryStub stores cards in-memory for tests.
type CardRepositoryStub struct {
	mu        sync.Mutex
	Cards     []model.Card
	NextID    int64
	Now       func() time.Time
	CreateFn  func(context.Context, *model.Card) (*model.Card, error)
	CreateErr error
	MoveErr   error
	FindErr   error
}

// NewCardRepositoryStub constructs an empty card store.
func NewCardRepositoryStub() *CardRepositoryStub {
	return &CardRepositoryStub{NextID: 1, Now: time.Now}
}

// FindByMarker scans all cards on the board for a title containing marker.
func (s *CardRepositoryStub) FindByMarker(ctx context.Context, boardID int64, marker string) (*model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	for i := range s.Cards {
		if s.Cards[i].BoardID == boardID && strings.Contains(s.Cards[i].Title, marker) {
			card := s.Cards[i]
			return &card, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MaxPosition returns the highest position across the board's cards.
func (s *CardRepositoryStub) MaxPosition(ctx context.Context, boardID int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var max int64
	found := false
	for i := range s.Cards {
		if s.Cards[i].BoardID != boardID {
			continue
		}
		if !found || s.Cards[i].Position > max {
			max = s.Cards[i].Position
			found = true
		}
	}
	return max, found, nil
}

// Create stores a card and assigns id and creation time.
func (s *CardRepositoryStub) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, card)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	stored := *card
	stored.ID = s.NextID
	s.NextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.Now()
	}
	s.Cards = append(s.Cards, stored)
	result := stored
	return &result, nil
}

// Move reassigns a card's column.
func (s *CardRepositoryStub) Move(ctx context.Context, cardID, newColumnID int64) (*model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MoveErr != nil {
		return nil, s.MoveErr
	}
	for i := range s.Cards {
		if s.Cards[i].ID == cardID {
			s.Cards[i].ColumnID = newColumnID
			card := s.Cards[i]
			return &card, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ActivityRepositoryStub records appended activities.
type ActivityRepositoryStub struct {
	mu      sync.Mutex
	Entries []model.Activity
	NextID  int64
	Err     error
}

// Append stores an activity entry.
func (s *ActivityRepositoryStub) Append(ctx context.Context, cardID int64, message string, actorID *int64) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.NextID++
	entry := model.Activity{ID: s.NextID, CardID: cardID, Message: message, ActorID: actorID, CreatedAt: time.Now()}
	s.Entries = append(s.Entries, entry)
	result := entry
	return &result, nil
}

// Messages returns the recorded activity messages in order.
func (s *ActivityRepositoryStub) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]string, 0, len(s.Entries))
	for _, entry := range s.Entries {
		messages = append(messages, entry.Message)
	}
	return messages
}
