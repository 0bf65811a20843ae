package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"
)

var ErrUnknownResult = errors.New("unknown game result")

type ScoreRepository interface {
	Init(ctx context.Context) error
	IncrementResult(ctx context.Context, modeKey, result string) error
	GetAll(ctx context.Context) (map[string]entity.Score, error)
}

type dbScore struct {
	conn *sql.DB
}

func NewScoreRepository(conn *sql.DB) ScoreRepository {
	return &dbScore{
		conn: conn,
	}
}

func (that *dbScore) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS scores (
		mode_key TEXT PRIMARY KEY,
		wins     INTEGER NOT NULL DEFAULT 0,
		losses   INTEGER NOT NULL DEFAULT 0,
		draws    INTEGER NOT NULL DEFAULT 0
	)`

	if _, err := that.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create scores table: %w", err)
	}

	return nil
}

// IncrementResult bumps exactly one counter of the mode key's record,
// creating the record on first use.
func (that *dbScore) IncrementResult(ctx context.Context, modeKey, result string) error {
	var column string

	switch result {
	case ResultWin:
		column = "wins"
	case ResultLoss:
		column = "losses"
	case ResultDraw:
		column = "draws"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}

	query := fmt.Sprintf(`INSERT INTO scores (mode_key, %[1]s) VALUES (?, 1)
		ON CONFLICT(mode_key) DO UPDATE SET %[1]s = %[1]s + 1`, column)

	if _, err := that.conn.ExecContext(ctx, query, modeKey); err != nil {
		return fmt.Errorf("can't increment %s for %s: %w", column, modeKey, err)
	}

	return nil
}

func (that *dbScore) GetAll(ctx context.Context) (map[string]entity.Score, error) {
	query := `SELECT mode_key, wins, losses, draws FROM scores`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't read scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]entity.Score)
	for rows.Next() {
		var modeKey string
		var score entity.Score
		if err = rows.Scan(&modeKey, &score.Wins, &score.Losses, &score.Draws); err != nil {
			return nil, fmt.Errorf("can't scan score row: %w", err)
		}
		scores[modeKey] = score
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate score rows: %w", err)
	}

	return scores, nil
}
