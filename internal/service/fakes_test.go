package service

import (
	"context"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/repository"
)

// In-memory repositories for the orchestration tests: same contracts as the
// Redis/SQLite implementations, no storage behind them.

type memPlayerRepo struct {
	players map[string]*entity.Player
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{players: make(map[string]*entity.Player)}
}

func (that *memPlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	stored := *player
	that.players[player.ID] = &stored
	return nil
}

func (that *memPlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}
	found := *player
	return &found, nil
}

type memGameRepo struct {
	games map[string]*entity.Game
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{games: make(map[string]*entity.Game)}
}

func (that *memGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	stored := *game
	that.games[game.ID] = &stored
	return nil
}

func (that *memGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}
	found := *game
	return &found, nil
}

func (that *memGameRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.games[id]; !ok {
		return repository.ErrGameNotFound
	}
	delete(that.games, id)
	return nil
}

type memScoreRepo struct {
	scores map[string]entity.Score
}

func newMemScoreRepo() *memScoreRepo {
	return &memScoreRepo{scores: make(map[string]entity.Score)}
}

func (that *memScoreRepo) IncrementResult(_ context.Context, modeKey, result string) error {
	score := that.scores[modeKey]
	switch result {
	case repository.ResultWin:
		score.Wins++
	case repository.ResultLoss:
		score.Losses++
	case repository.ResultDraw:
		score.Draws++
	}
	that.scores[modeKey] = score
	return nil
}

func (that *memScoreRepo) GetAll(_ context.Context) (map[string]entity.Score, error) {
	all := make(map[string]entity.Score, len(that.scores))
	for key, score := range that.scores {
		all[key] = score
	}
	return all, nil
}
