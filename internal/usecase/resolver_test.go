package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
)

type stubBoardRepository struct {
	boards  map[int64]*model.Board
	byTitle map[string]*model.Board
	columns map[int64][]model.Column
	err     error
}

func (s *stubBoardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	if s.err != nil {
		return nil, s.err
	}
	if board, ok := s.boards[id]; ok {
		return board, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubBoardRepository) FindEarliest(ctx context.Context) (*model.Board, error) {
	if s.err != nil {
		return nil, s.err
	}
	var earliest *model.Board
	for _, board := range s.boards {
		if earliest == nil || board.CreatedAt.Before(earliest.CreatedAt) {
			earliest = board
		}
	}
	if earliest == nil {
		return nil, domainErrors.ErrNotFound
	}
	return earliest, nil
}

func (s *stubBoardRepository) FindByTitle(ctx context.Context, title string) (*model.Board, error) {
	if s.err != nil {
		return nil, s.err
	}
	if board, ok := s.byTitle[title]; ok {
		return board, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubBoardRepository) ColumnsOf(ctx context.Context, boardID int64) ([]model.Column, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.columns[boardID], nil
}

func TestResolveBoardExplicit(t *testing.T) {
	repo := &stubBoardRepository{boards: map[int64]*model.Board{7: {ID: 7, Title: "Falcon Board"}}}
	resolver := NewResolver(repo, discardLogger())

	board, err := resolver.ResolveBoard(context.Background(), ExplicitBoard(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != 7 {
		t.Fatalf("expected board 7, got %d", board.ID)
	}
}

func TestResolveBoardExplicitFallsBackToEarliest(t *testing.T) {
	repo := &stubBoardRepository{boards: map[int64]*model.Board{
		2: {ID: 2, CreatedAt: time.Unix(200, 0)},
		1: {ID: 1, CreatedAt: time.Unix(100, 0)},
	}}
	resolver := NewResolver(repo, discardLogger())

	board, err := resolver.ResolveBoard(context.Background(), ExplicitBoard(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != 1 {
		t.Fatalf("expected fallback to earliest board 1, got %d", board.ID)
	}
}

func TestResolveBoardNoneExists(t *testing.T) {
	resolver := NewResolver(&stubBoardRepository{}, discardLogger())

	if _, err := resolver.ResolveBoard(context.Background(), EarliestBoard()); !errors.Is(err, domainErrors.ErrNoBoard) {
		t.Fatalf("expected ErrNoBoard, got %v", err)
	}
}

func TestResolveBoardByTitle(t *testing.T) {
	repo := &stubBoardRepository{byTitle: map[string]*model.Board{"Daily Standup": {ID: 3, Title: "Daily Standup"}}}
	resolver := NewResolver(repo, discardLogger())

	board, err := resolver.ResolveBoard(context.Background(), BoardByTitle("Daily Standup"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != 3 {
		t.Fatalf("expected board 3, got %d", board.ID)
	}

	if _, err := resolver.ResolveBoard(context.Background(), BoardByTitle("Missing")); !errors.Is(err, domainErrors.ErrNoBoard) {
		t.Fatalf("expected ErrNoBoard for unknown title, got %v", err)
	}
}

func TestResolveBoardPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := NewResolver(&stubBoardRepository{err: storeErr}, discardLogger())

	if _, err := resolver.ResolveBoard(context.Background(), EarliestBoard()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestResolveColumn(t *testing.T) {
	repo := &stubBoardRepository{columns: map[int64][]model.Column{
		1: {{ID: 10, BoardID: 1, Title: "Priority"}, {ID: 11, BoardID: 1, Title: "Ground"}},
	}}
	resolver := NewResolver(repo, discardLogger())

	column, err := resolver.ResolveColumn(context.Background(), 1, "Ground")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if column.ID != 11 {
		t.Fatalf("expected column 11, got %d", column.ID)
	}

	if _, err := resolver.ResolveColumn(context.Background(), 1, "Express"); !errors.Is(err, domainErrors.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}
