package service

import (
	"context"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/repository"
)

type ScoreService interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
	Stats(ctx context.Context) (map[string]entity.Score, error)
}

type scoreRepo interface {
	IncrementResult(ctx context.Context, modeKey, result string) error
	GetAll(ctx context.Context) (map[string]entity.Score, error)
}

type scoreService struct {
	scoreRepo scoreRepo
}

func NewScoreService(scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

// RecordOutcome increments the counter bucket of a finished game. Counters
// are kept from player X's side: an X win counts as a win, an O win as a
// loss, anything else as a draw.
func (that *scoreService) RecordOutcome(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return nil
	}

	var result string
	switch game.Winner {
	case entity.PlayerX:
		result = repository.ResultWin
	case entity.PlayerO:
		result = repository.ResultLoss
	default:
		result = repository.ResultDraw
	}

	if err := that.scoreRepo.IncrementResult(ctx, game.ScoreKey(), result); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *scoreService) Stats(ctx context.Context) (map[string]entity.Score, error) {
	scores, err := that.scoreRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	return scores, nil
}
