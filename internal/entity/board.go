package entity

import (
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// BoardSize is fixed: the game is played on a 3x3 grid.
const BoardSize = 3

// Board holds the marks placed so far, indexed by [row][col].
// The zero value is an empty board.
type Board [BoardSize][BoardSize]string

// Move addresses a single cell on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// winLines enumerates every three-in-a-row: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Apply places a mark on an empty cell. The board is left untouched when the
// move is rejected.
func (that *Board) Apply(move Move, mark string) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that[move.Row][move.Col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[move.Row][move.Col] = mark

	return nil
}

func (that *Board) Clear(move Move) {
	that[move.Row][move.Col] = EmptyCell
}

// Winner returns the mark holding a complete line, or EmptyCell if there is none.
func (that Board) Winner() string {
	for _, line := range winLines {
		a := that[line[0].Row][line[0].Col]
		b := that[line[1].Row][line[1].Col]
		c := that[line[2].Row][line[2].Col]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Result evaluates the board: the winning mark, PlayerTie for a full board
// without a winner, or EmptyCell while the game can continue.
func (that Board) Result() string {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// LegalMoves lists every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// OpponentMark returns the mark of the other side.
func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
