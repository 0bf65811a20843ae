package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a waiting pvp game
	game := entity.NewGame("123", entity.ModePVP)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("Returns the stored game with its board intact", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: an ongoing game with moves on the board
		game := entity.NewGame("123", entity.ModePVE)
		game.Difficulty = entity.DifficultyHard
		game.Status = entity.StatusOngoing
		require.NoError(t, game.MakeTurn(entity.PlayerX, entity.Move{Row: 1, Col: 1}))

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with the existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches the saved one
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Status, retrievedGame.Status)
		assert.Equal(t, game.Board, retrievedGame.Board)
		assert.Equal(t, entity.PlayerO, retrievedGame.Turn)
	})

	t.Run("Returns ErrGameNotFound for an unknown ID", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("Deletes an existing game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		game := entity.NewGame("123", entity.ModePVP)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with the existing ID
		require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))

		// Then: the game is gone
		_, err := gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Returns ErrGameNotFound for an unknown ID", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		err := gameRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
