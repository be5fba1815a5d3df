package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
	"github.com/falconboard/boardflow/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests
// substitute a mock through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type boardRepository struct {
	storage *Storage
}

type cardRepository struct {
	storage *Storage
}

type activityRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Boards() repository.BoardRepository {
	return &boardRepository{storage: s}
}

func (s *Storage) Cards() repository.CardRepository {
	return &cardRepository{storage: s}
}

func (s *Storage) Activities() repository.ActivityRepository {
	return &activityRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS boards (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            owner_id BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS columns (
            id SERIAL PRIMARY KEY,
            board_id BIGINT NOT NULL REFERENCES boards(id),
            title TEXT NOT NULL,
            position INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS cards (
            id SERIAL PRIMARY KEY,
            column_id BIGINT NOT NULL REFERENCES columns(id),
            board_id BIGINT NOT NULL REFERENCES boards(id),
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            position BIGINT NOT NULL DEFAULT 0,
            order_ref TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS activities (
            id SERIAL PRIMARY KEY,
            card_id BIGINT NOT NULL REFERENCES cards(id),
            message TEXT NOT NULL,
            actor_id BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_board ON cards(board_id, position DESC)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cards_board_order_ref ON cards(board_id, order_ref) WHERE order_ref IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_activities_card ON activities(card_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- BoardRepository implementation ---

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	const query = `SELECT id, title, owner_id, created_at FROM boards WHERE id=$1`
	var b model.Board
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.OwnerID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *boardRepository) FindEarliest(ctx context.Context) (*model.Board, error) {
	const query = `SELECT id, title, owner_id, created_at FROM boards ORDER BY created_at, id LIMIT 1`
	var b model.Board
	err := r.storage.pool.QueryRow(ctx, query).Scan(&b.ID, &b.Title, &b.OwnerID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *boardRepository) FindByTitle(ctx context.Context, title string) (*model.Board, error) {
	const query = `SELECT id, title, owner_id, created_at FROM boards WHERE title=$1 ORDER BY created_at, id LIMIT 1`
	var b model.Board
	err := r.storage.pool.QueryRow(ctx, query, title).Scan(&b.ID, &b.Title, &b.OwnerID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *boardRepository) ColumnsOf(ctx context.Context, boardID int64) ([]model.Column, error) {
	const query = `SELECT id, board_id, title, position FROM columns WHERE board_id=$1 ORDER BY position, id`
	rows, err := r.storage.pool.Query(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Column
	for rows.Next() {
		var c model.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Title, &c.Position); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CardRepository implementation ---

func (r *cardRepository) FindByMarker(ctx context.Context, boardID int64, marker string) (*model.Card, error) {
	const query = `SELECT id, column_id, board_id, title, description, position, COALESCE(order_ref, ''), created_at
                   FROM cards WHERE board_id=$1 AND (order_ref=$2 OR title LIKE '%' || $2 || '%')
                   ORDER BY id LIMIT 1`
	var c model.Card
	err := r.storage.pool.QueryRow(ctx, query, boardID, marker).Scan(&c.ID, &c.ColumnID, &c.BoardID, &c.Title, &c.Description, &c.Position, &c.OrderRef, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *cardRepository) MaxPosition(ctx context.Context, boardID int64) (int64, bool, error) {
	const query = `SELECT MAX(position) FROM cards WHERE board_id=$1`
	var max *int64
	err := r.storage.pool.QueryRow(ctx, query, boardID).Scan(&max)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

func (r *cardRepository) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	const query = `INSERT INTO cards (column_id, board_id, title, description, position, order_ref)
                   VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
                   RETURNING id, created_at`
	created := *card
	err := r.storage.pool.QueryRow(ctx, query, card.ColumnID, card.BoardID, card.Title, card.Description, card.Position, card.OrderRef).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *cardRepository) Move(ctx context.Context, cardID, newColumnID int64) (*model.Card, error) {
	const query = `UPDATE cards SET column_id=$1 WHERE id=$2
                   RETURNING id, column_id, board_id, title, description, position, COALESCE(order_ref, ''), created_at`
	var c model.Card
	err := r.storage.pool.QueryRow(ctx, query, newColumnID, cardID).
		Scan(&c.ID, &c.ColumnID, &c.BoardID, &c.Title, &c.Description, &c.Position, &c.OrderRef, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- ActivityRepository implementation ---

func (r *activityRepository) Append(ctx context.Context, cardID int64, message string, actorID *int64) (*model.Activity, error) {
	const query = `INSERT INTO activities (card_id, message, actor_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	activity := model.Activity{CardID: cardID, Message: message, ActorID: actorID}
	err := r.storage.pool.QueryRow(ctx, query, cardID, message, actorID).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
