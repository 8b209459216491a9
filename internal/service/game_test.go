package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-minimax/mocks/service"
)

var errRedisDown = errors.New("redis down")

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a game with a fresh id", func(t *testing.T) {
		// Given: a repository that accepts the game
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: creating a human game
		game, err := gameService.CreateGame(ctx, entity.ModeHuman)

		// Then: the game starts empty with X to move and a uuid id
		require.NoError(t, err)
		assert.Equal(t, entity.ModeHuman, game.Mode)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.InProgress(), game.Result)

		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)
	})

	t.Run("Returns error if storage fails", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errRedisDown).
			Once()

		game, err := gameService.CreateGame(ctx, entity.ModeAI)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		stored := entity.NewGame("game123", entity.ModeAI)
		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "game123").
			Return(stored, nil).
			Once()

		game, err := gameService.GetGameByID(ctx, "game123")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Keeps ErrGameNotFound visible", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, apperror.ErrGameNotFound).
			Once()

		_, err := gameService.GetGameByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_ModifyGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the modified game", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		stored := entity.NewGame("game123", entity.ModeHuman)
		mockGameRepo.EXPECT().
			Update(mock.Anything, "game123", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, fn func(*entity.Game) error) (*entity.Game, error) {
				return stored, fn(stored)
			}).
			Once()

		game, err := gameService.ModifyGame(ctx, "game123", func(game *entity.Game) error {
			game.Board[1][1] = entity.PlayerX
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[1][1])
	})

	t.Run("Keeps ErrGameConflict visible", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			Update(mock.Anything, "game123", mock.Anything).
			Return(nil, apperror.ErrGameConflict).
			Once()

		game, err := gameService.ModifyGame(ctx, "game123", func(*entity.Game) error { return nil })

		require.ErrorIs(t, err, apperror.ErrGameConflict)
		assert.Nil(t, game)
	})

	t.Run("Returns the game together with a rule error", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		stored := entity.NewGame("game123", entity.ModeHuman)
		mockGameRepo.EXPECT().
			Update(mock.Anything, "game123", mock.Anything).
			Return(stored, apperror.ErrInvalidMove).
			Once()

		game, err := gameService.ModifyGame(ctx, "game123", func(*entity.Game) error { return nil })

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, stored, game)
	})

	t.Run("Returns error if storage fails", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			Update(mock.Anything, "game123", mock.Anything).
			Return(nil, errRedisDown).
			Once()

		_, err := gameService.ModifyGame(ctx, "game123", func(*entity.Game) error { return nil })

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mockedService.NewMockgameRepo(t)
	gameService := NewGameService(mockGameRepo)

	mockGameRepo.EXPECT().
		DeleteByID(mock.Anything, "game123").
		Return(nil).
		Once()

	require.NoError(t, gameService.DeleteGame(ctx, "game123"))
}
