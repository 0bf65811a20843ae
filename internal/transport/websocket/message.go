package websocket

import (
	"encoding/json"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// Message is the envelope of every request and response on the socket.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the union of fields a client may send; each handler
// reads the ones its action needs.
type RequestPayload struct {
	Player *PlayerRequest `json:"player,omitempty"`
	Game   *GameRequest   `json:"game,omitempty"`
	Move   *entity.Move   `json:"move,omitempty"`
	Accept *bool          `json:"accept,omitempty"`
}

type PlayerRequest struct {
	ID string `json:"id"`
}

type GameRequest struct {
	ID         string `json:"id,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameResponse  `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type GameResponse struct {
	ID         string       `json:"id"`
	Board      entity.Board `json:"board"`
	Turn       string       `json:"player_turn"`
	Winner     string       `json:"winner"`
	Status     string       `json:"status"`
	Mode       string       `json:"mode"`
	Difficulty string       `json:"difficulty,omitempty"`
	DrawOffer  string       `json:"draw_offer,omitempty"`
}

func gameResponse(game *entity.Game) *GameResponse {
	if game == nil {
		return nil
	}

	return &GameResponse{
		ID:         game.ID,
		Board:      game.Board,
		Turn:       game.Turn,
		Winner:     game.Winner,
		Status:     game.Status,
		Mode:       game.Mode,
		Difficulty: game.Difficulty,
		DrawOffer:  game.DrawOffer,
	}
}
