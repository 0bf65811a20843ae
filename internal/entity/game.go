package entity

import (
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	ModePVP = "pvp"
	ModePVE = "pve"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID         string    `json:"id"`
	Board      Board     `json:"board"`
	Winner     string    `json:"winner"`
	Status     string    `json:"status"`
	Turn       string    `json:"player_turn"`
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty,omitempty"`
	DrawOffer  string    `json:"draw_offer,omitempty"`
	Players    []*Player `json:"players,omitempty"`
}

// NewGame creates a waiting game. X always moves first.
func NewGame(id, mode string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerX,
		Status: StatusWaiting,
		Mode:   mode,
	}
}

// UpdateGameState derives winner and status from the board after a move.
func (that *Game) UpdateGameState() {
	switch result := that.Board.Result(); result {
	case PlayerX, PlayerO:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn applies a move for the given mark. Rejected moves leave the game
// unchanged.
func (that *Game) MakeTurn(playerMark string, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(move, playerMark); err != nil {
		return err
	}

	that.Turn = OpponentMark(playerMark)

	that.UpdateGameState()

	return nil
}

// PassTurn hands the turn to the other side without a move. Callers use it
// when their own turn timer expires; the game itself keeps no clock.
func (that *Game) PassTurn(playerMark string) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	that.Turn = OpponentMark(playerMark)

	return nil
}

// OfferDraw records a pending draw offer from the given mark. Only the side
// to move may offer, only one offer may be pending at a time, and only
// player-vs-player games accept them.
func (that *Game) OfferDraw(playerMark string) error {
	if that.Mode != ModePVP {
		return apperror.ErrDrawNotAllowed
	}

	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.DrawOffer != EmptyCell {
		return apperror.ErrDrawAlreadyOffered
	}

	that.DrawOffer = playerMark

	return nil
}

// ResolveDraw lets the non-offering side accept or reject the pending offer.
// Acceptance finishes the game as a tie regardless of the board.
func (that *Game) ResolveDraw(playerMark string, accept bool) error {
	if that.DrawOffer == EmptyCell {
		return apperror.ErrNoDrawOffered
	}

	if that.DrawOffer == playerMark {
		return apperror.ErrOwnDrawOffer
	}

	that.DrawOffer = EmptyCell

	if accept {
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModePVE
}

// ScoreKey names the counter bucket this game reports into.
func (that *Game) ScoreKey() string {
	if that.Mode == ModePVE {
		return that.Mode + "_" + that.Difficulty
	}
	return that.Mode
}
