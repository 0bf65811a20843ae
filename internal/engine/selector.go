package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// mediumSearchChance is the probability that a medium-difficulty selection
// runs the full search instead of playing at random.
const mediumSearchChance = 0.7

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Selector picks a move for the computer according to the configured
// difficulty. It is not safe for concurrent use; each game turn runs to
// completion before the next one starts.
type Selector struct {
	rng *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // it's ok
	}
}

// NewSelectorWithSource keeps statistical tests reproducible.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)} //nolint: gosec // it's ok
}

// SelectMove returns a move for aiMark under the same precondition as
// BestMove.
//
// Medium keeps two independent draws: first whether to search at all, then,
// only when not searching, which random cell to take. Collapsing them into
// one weighted draw over {best, random} would shift the distribution, since
// the random branch may still land on the best move.
func (that *Selector) SelectMove(board entity.Board, aiMark, difficulty string) (entity.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 || board.Winner() != entity.EmptyCell {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return moves[that.rng.Intn(len(moves))], nil
	case entity.DifficultyMedium:
		if that.rng.Float64() < mediumSearchChance {
			return BestMove(board, aiMark)
		}
		return moves[that.rng.Intn(len(moves))], nil
	case entity.DifficultyHard:
		return BestMove(board, aiMark)
	default:
		return entity.Move{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}
