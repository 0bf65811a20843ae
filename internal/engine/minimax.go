// Package engine computes moves for the computer player: an exhaustive
// minimax search with alpha-beta pruning and the difficulty policies built
// on top of it.
package engine

import (
	"math"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// Terminal scores from the searching side's perspective. Scores carry no
// depth component: a win in two plies is worth the same as a win in six.
const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// BestMove returns the game-theoretically optimal move for aiMark. The board
// must be in progress with at least one empty cell; calling it on a decided
// or full board is an orchestration bug and reports ErrNoAvailableMoves.
//
// The root enumerates every legal move itself rather than trusting a score
// bubbled out of the recursion, so ties break on the first row-major move
// reaching the best value.
func BestMove(board entity.Board, aiMark string) (entity.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 || board.Winner() != entity.EmptyCell {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	bestMove := moves[0]
	bestScore := math.MinInt

	for _, move := range moves {
		board[move.Row][move.Col] = aiMark
		score := minimax(&board, aiMark, false, math.MinInt, math.MaxInt)
		board.Clear(move)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

// minimax explores the remaining game tree with mutate-then-undo: each move
// is placed before recursing and cleared right after, so the caller's board
// is unchanged when the function returns. Siblings are pruned once
// beta <= alpha; pruning only skips work, never changes the value.
func minimax(board *entity.Board, aiMark string, maximizing bool, alpha, beta int) int {
	switch winner := board.Winner(); winner {
	case aiMark:
		return scoreWin
	case entity.EmptyCell:
	default:
		return scoreLoss
	}

	if board.IsFull() {
		return scoreDraw
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.LegalMoves() {
			board[move.Row][move.Col] = aiMark
			score := minimax(board, aiMark, false, alpha, beta)
			board.Clear(move)

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	opponent := entity.OpponentMark(aiMark)

	best := math.MaxInt
	for _, move := range board.LegalMoves() {
		board[move.Row][move.Col] = opponent
		score := minimax(board, aiMark, true, alpha, beta)
		board.Clear(move)

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
