package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

var (
	ErrGameIsFull        = errors.New("game already has two players")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownDifficulty = errors.New("unknown game difficulty")
	ErrAlreadyInGame     = errors.New("player is already in a game")
	ErrNotInGame         = errors.New("player is not in a game")
	ErrCannotJoinGame    = errors.New("game cannot be joined")
)

// GamePlayService drives a game session: it validates and applies player
// requests, lets the bot answer in player-vs-computer games, and reports
// terminal outcomes to the score service.
type GamePlayService interface {
	StartGame(ctx context.Context, playerID, mode, difficulty string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)

	OfferDraw(ctx context.Context, playerID string) (*entity.Game, error)
	ResolveDraw(ctx context.Context, playerID string, accept bool) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	scoreService  ScoreService
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	scoreService ScoreService,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		scoreService:  scoreService,
	}
}

// StartGame creates a fresh game for the player. A pvp game waits for a
// second player; a pve game gets its bot immediately and is ready to play,
// with the human holding X and the computer O.
func (that *gamePlayService) StartGame(ctx context.Context, playerID, mode, difficulty string) (*entity.Game, error) {
	if mode != entity.ModePVP && mode != entity.ModePVE {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	// A bad difficulty would only surface on the bot's first move and leave
	// the game stuck, so it is rejected before anything is created.
	if mode == entity.ModePVE {
		switch difficulty {
		case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
		}
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		return nil, fmt.Errorf("%w: game id %s", ErrAlreadyInGame, player.GameID)
	}

	game, err := that.gameService.CreateGame(ctx, mode, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	player.Mark = entity.PlayerX
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Players = []*entity.Player{player}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// addBotToGame seats the computer as O and starts the game. X moves first,
// so the bot never opens.
func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID)
	botPlayer.Mark = entity.PlayerO

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	return nil
}

// JoinGame seats a second human player as O and starts the game.
func (that *gamePlayService) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if player.GameID != "" {
		return nil, fmt.Errorf("%w: game id %s", ErrAlreadyInGame, player.GameID)
	}

	if game.IsWithBot() || !game.IsWaiting() {
		return nil, fmt.Errorf("%w: game id %s", ErrCannotJoinGame, gameID)
	}

	if len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", ErrGameIsFull, gameID)
	}

	player.GameID = game.ID
	player.Mark = entity.PlayerO
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the player's move. When the game stays ongoing and the
// bot holds the turn, the bot answers within the same call, so the caller
// always gets back a game that is either waiting for a human or finished.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() && game.Turn == entity.PlayerO {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.finishOrUpdate(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// PassTurn hands the turn over without a move. Turn timers live with the
// caller; an expired timer shows up here as a forced pass. A pass that gives
// the bot the turn makes it move immediately.
func (that *gamePlayService) PassTurn(ctx context.Context, playerID string) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.PassTurn(player.Mark); err != nil {
		return game, fmt.Errorf("failed to pass turn: %w", err)
	}

	if game.IsWithBot() && game.Turn == entity.PlayerO {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.finishOrUpdate(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) OfferDraw(ctx context.Context, playerID string) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.OfferDraw(player.Mark); err != nil {
		return game, fmt.Errorf("failed to offer draw: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) ResolveDraw(ctx context.Context, playerID string, accept bool) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.ResolveDraw(player.Mark, accept); err != nil {
		return game, fmt.Errorf("failed to resolve draw: %w", err)
	}

	if err = that.finishOrUpdate(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) playerGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, nil, ErrNotInGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}

// finishOrUpdate persists an ongoing game, or reports the outcome and tears
// the game down once it is finished. Outcome recording never fails the
// request; a broken score storage only costs the counter.
func (that *gamePlayService) finishOrUpdate(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		if err := that.gameService.UpdateGame(ctx, game); err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}

		return nil
	}

	if err := that.scoreService.RecordOutcome(ctx, game); err != nil {
		that.logger.Error("failed to record outcome", "gameID", game.ID, "error", err)
	}

	that.cleanupGame(ctx, game)

	return nil
}

func (that *gamePlayService) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		oldMark := player.Mark
		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
		player.Mark = oldMark
	}
}
