package repository

import (
	"context"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// BoardRepository describes persistence operations with boards and columns.
type BoardRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	FindEarliest(ctx context.Context) (*model.Board, error)
	FindByTitle(ctx context.Context, title string) (*model.Board, error)
	ColumnsOf(ctx context.Context, boardID int64) ([]model.Column, error)
}
