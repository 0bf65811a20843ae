package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/pkg"
	"github.com/playgrid/tictactoe-backend/internal/repository"
)

type PlayerService interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type playerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// GetOrCreatePlayer registers a new player when id is empty, otherwise
// returns the already known one. A supplied id whose session record has
// expired is registered anew, so reconnecting clients keep their identity.
func (that *playerService) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx)
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player = &entity.Player{ID: id}
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to re-register player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *playerService) createPlayer(ctx context.Context) (*entity.Player, error) {
	playerID, err := pkg.GenerateNewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate player id: %w", err)
	}

	player := &entity.Player{
		ID: playerID,
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *playerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *playerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
