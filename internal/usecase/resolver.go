package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
	"github.com/falconboard/boardflow/internal/domain/repository"
)

// BoardPolicyMode enumerates board selection strategies.
type BoardPolicyMode string

const (
	BoardPolicyExplicit BoardPolicyMode = "explicit"
	BoardPolicyEarliest BoardPolicyMode = "earliest"
	BoardPolicyByTitle  BoardPolicyMode = "title"
)

// BoardSelectionPolicy names the destination board for a routing run.
// Callers must supply one; there are no hidden defaults.
type BoardSelectionPolicy struct {
	Mode    BoardPolicyMode
	BoardID int64
	Title   string
}

// ExplicitBoard targets a configured board id, falling back to the earliest
// created board when the id does not resolve.
func ExplicitBoard(id int64) BoardSelectionPolicy {
	return BoardSelectionPolicy{Mode: BoardPolicyExplicit, BoardID: id}
}

// EarliestBoard targets the earliest-created board.
func EarliestBoard() BoardSelectionPolicy {
	return BoardSelectionPolicy{Mode: BoardPolicyEarliest}
}

// BoardByTitle targets the board with an exact title match.
func BoardByTitle(title string) BoardSelectionPolicy {
	return BoardSelectionPolicy{Mode: BoardPolicyByTitle, Title: title}
}

// Resolver locates the destination board and target column. Boards and
// columns are provisioned out-of-band and never created on this path.
type Resolver struct {
	boards repository.BoardRepository
	logger *slog.Logger
}

// NewResolver constructs Resolver.
func NewResolver(boards repository.BoardRepository, logger *slog.Logger) *Resolver {
	return &Resolver{boards: boards, logger: logger}
}

// ResolveBoard applies the selection policy. A missing explicit board falls
// back to the earliest-created board; no board at all is a hard failure.
func (r *Resolver) ResolveBoard(ctx context.Context, policy BoardSelectionPolicy) (*model.Board, error) {
	switch policy.Mode {
	case BoardPolicyExplicit:
		board, err := r.boards.GetByID(ctx, policy.BoardID)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		r.logger.Warn("configured board not found, falling back to earliest",
			slog.Int64("board_id", policy.BoardID),
		)
		return r.earliest(ctx)
	case BoardPolicyByTitle:
		board, err := r.boards.FindByTitle(ctx, policy.Title)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("board %q: %w", policy.Title, domainErrors.ErrNoBoard)
			}
			return nil, err
		}
		return board, nil
	default:
		return r.earliest(ctx)
	}
}

// ResolveColumn finds the column with an exact title match on the board.
func (r *Resolver) ResolveColumn(ctx context.Context, boardID int64, title string) (*model.Column, error) {
	columns, err := r.boards.ColumnsOf(ctx, boardID)
	if err != nil {
		return nil, err
	}
	for i := range columns {
		if columns[i].Title == title {
			return &columns[i], nil
		}
	}
	return nil, fmt.Errorf("column %q: %w", title, domainErrors.ErrColumnNotFound)
}

func (r *Resolver) earliest(ctx context.Context) (*model.Board, error) {
	board, err := r.boards.FindEarliest(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoBoard
		}
		return nil, err
	}
	return board, nil
}
