package service

import (
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/engine"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	selector *engine.Selector
}

func NewBotService(selector *engine.Selector) BotService {
	return &botService{
		selector: selector,
	}
}

// MakeTurn picks a move for the game's bot player at the game's difficulty
// and applies it.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, err := that.selector.SelectMove(game.Board, botPlayer.Mark, game.Difficulty)
	if err != nil {
		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
