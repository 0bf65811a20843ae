package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrNoAvailableMoves = errors.New("no available moves")

	ErrDrawNotAllowed     = errors.New("draw offers are only allowed in player-vs-player games")
	ErrDrawAlreadyOffered = errors.New("a draw offer is already pending")
	ErrNoDrawOffered      = errors.New("no draw offer to resolve")
	ErrOwnDrawOffer       = errors.New("a draw offer cannot be resolved by its author")
)
