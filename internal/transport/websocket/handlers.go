package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

var (
	ErrMissingPlayer = errors.New("payload is missing player info")
	ErrMissingGame   = errors.New("payload is missing game info")
	ErrMissingMove   = errors.New("payload is missing move")
	ErrMissingAccept = errors.New("payload is missing accept flag")
)

func decodePayload(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	return &payload, nil
}

func (that *RequestPayload) playerID() (string, error) {
	if that.Player == nil || that.Player.ID == "" {
		return "", ErrMissingPlayer
	}
	return that.Player.ID, nil
}

// handleConnect registers the player, creating a fresh identity when the
// client does not send one.
func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.players.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if playerID == "" {
		that.logger.Info("registered new player", "playerID", player.ID)
	} else {
		that.logger.Info("player connected", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	if payload.Game == nil || payload.Game.Mode == "" {
		return ErrMissingGame
	}

	game, err := that.gameplay.StartGame(ctx, playerID, payload.Game.Mode, payload.Game.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}

func (that *Server) handleJoinGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	if payload.Game == nil || payload.Game.ID == "" {
		return ErrMissingGame
	}

	game, err := that.gameplay.JoinGame(ctx, payload.Game.ID, playerID)
	if err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}

func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	if payload.Move == nil {
		return ErrMissingMove
	}

	game, err := that.gameplay.MakeTurn(ctx, playerID, *payload.Move)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}

func (that *Server) handlePass(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	game, err := that.gameplay.PassTurn(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to pass turn: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}

func (that *Server) handleDrawOffer(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	game, err := that.gameplay.OfferDraw(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to offer draw: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}

func (that *Server) handleDrawResolve(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID, err := payload.playerID()
	if err != nil {
		return err
	}

	if payload.Accept == nil {
		return ErrMissingAccept
	}

	game, err := that.gameplay.ResolveDraw(ctx, playerID, *payload.Accept)
	if err != nil {
		return fmt.Errorf("failed to resolve draw: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: gameResponse(game)})
}
