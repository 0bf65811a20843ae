package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/repository/storage"
)

func newScoreRepo(t *testing.T) (context.Context, ScoreRepository) {
	t.Helper()

	ctx := context.Background()

	conn, err := storage.NewSQLite(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, conn.Close())
	})

	scoreRepo := NewScoreRepository(conn)
	require.NoError(t, scoreRepo.Init(ctx))

	return ctx, scoreRepo
}

func TestScoreRepository_IncrementResult(t *testing.T) {
	t.Run("First increment creates the mode record", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		// When: recording a win for a fresh mode key
		err := scoreRepo.IncrementResult(ctx, "pve_hard", ResultWin)

		// Then: the record exists with a single win
		require.NoError(t, err)

		scores, err := scoreRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Score{Wins: 1}, scores["pve_hard"])
	})

	t.Run("Counters accumulate independently per mode key", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		require.NoError(t, scoreRepo.IncrementResult(ctx, "pvp", ResultWin))
		require.NoError(t, scoreRepo.IncrementResult(ctx, "pvp", ResultLoss))
		require.NoError(t, scoreRepo.IncrementResult(ctx, "pvp", ResultDraw))
		require.NoError(t, scoreRepo.IncrementResult(ctx, "pvp", ResultDraw))
		require.NoError(t, scoreRepo.IncrementResult(ctx, "pve_easy", ResultLoss))

		scores, err := scoreRepo.GetAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, entity.Score{Wins: 1, Losses: 1, Draws: 2}, scores["pvp"])
		assert.Equal(t, entity.Score{Losses: 1}, scores["pve_easy"])
	})

	t.Run("Rejects an unknown result", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		err := scoreRepo.IncrementResult(ctx, "pvp", "forfeit")

		require.ErrorIs(t, err, ErrUnknownResult)
	})
}

func TestScoreRepository_GetAll(t *testing.T) {
	t.Run("Empty storage yields an empty map", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		scores, err := scoreRepo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, scores)
	})
}
