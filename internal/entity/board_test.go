package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
)

func TestBoard_Apply(t *testing.T) {
	t.Run("Places mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: applying a move inside the grid
		err := board.Apply(Move{Row: 1, Col: 2}, PlayerX)

		// Then: the mark lands on the requested cell
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[1][2])
	})

	t.Run("Rejects an occupied cell and leaves the board unchanged", func(t *testing.T) {
		// Given: a board with X on (0,0)
		var board Board
		require.NoError(t, board.Apply(Move{Row: 0, Col: 0}, PlayerX))
		before := board

		// When: O tries the same cell
		err := board.Apply(Move{Row: 0, Col: 0}, PlayerO)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board)
	})

	t.Run("Rejects out-of-range coordinates", func(t *testing.T) {
		var board Board

		for _, move := range []Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			err := board.Apply(move, PlayerX)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
		}

		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Detects a row win", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Detects a column win", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("Detects both diagonal wins", func(t *testing.T) {
		main := Board{
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerX},
		}
		anti := Board{
			{EmptyCell, PlayerX, PlayerO},
			{PlayerX, PlayerO, EmptyCell},
			{PlayerO, EmptyCell, EmptyCell},
		}

		assert.Equal(t, PlayerX, main.Winner())
		assert.Equal(t, PlayerO, anti.Winner())
	})

	t.Run("Returns EmptyCell when nobody has a line", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}

		assert.Equal(t, EmptyCell, board.Winner())
	})
}

func TestBoard_Result(t *testing.T) {
	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a drawn position
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		// Then: the result is a tie, and no winner is ever reported
		assert.Equal(t, PlayerTie, board.Result())
		assert.Equal(t, EmptyCell, board.Winner())
	})

	t.Run("Ongoing board has no result yet", func(t *testing.T) {
		board := Board{
			{PlayerX, EmptyCell, EmptyCell},
			{EmptyCell, PlayerO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		assert.Equal(t, EmptyCell, board.Result())
	})
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Empty board lists all nine cells in row-major order", func(t *testing.T) {
		var board Board

		moves := board.LegalMoves()

		require.Len(t, moves, 9)
		assert.Equal(t, Move{Row: 0, Col: 0}, moves[0])
		assert.Equal(t, Move{Row: 0, Col: 2}, moves[2])
		assert.Equal(t, Move{Row: 2, Col: 2}, moves[8])
	})

	t.Run("Occupied cells are excluded", func(t *testing.T) {
		var board Board
		require.NoError(t, board.Apply(Move{Row: 0, Col: 0}, PlayerX))
		require.NoError(t, board.Apply(Move{Row: 1, Col: 1}, PlayerO))

		moves := board.LegalMoves()

		require.Len(t, moves, 7)
		assert.NotContains(t, moves, Move{Row: 0, Col: 0})
		assert.NotContains(t, moves, Move{Row: 1, Col: 1})
	})

	t.Run("Full board has no legal moves", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		assert.Empty(t, board.LegalMoves())
		assert.True(t, board.IsFull())
	})
}

func TestOpponentMark(t *testing.T) {
	assert.Equal(t, PlayerO, OpponentMark(PlayerX))
	assert.Equal(t, PlayerX, OpponentMark(PlayerO))
}
