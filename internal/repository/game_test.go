package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Stores the game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a new game
		game := entity.NewGame("123", entity.ModeAI)

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: no error should be returned, and the key exists without expiry
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, gameKey(game.ID)).Result()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)
	})

	t.Run("Refreshes the expiry", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a game
		game := entity.NewGame("123", entity.ModeHuman)

		// When: CreateOrUpdate is called with a session ttl configured
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the key expires within the ttl
		ttl, err := st.Storage.TTL(ctx, gameKey(game.ID)).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, time.Hour)
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a game in progress with moves from both sides
		game := entity.NewGame("123", entity.ModeAI)
		game.Board[1][1] = entity.PlayerX
		game.Board[0][0] = entity.PlayerO
		game.LastHumanMove = &entity.Move{Row: 1, Col: 1}
		game.LastAIMove = &entity.Move{Row: 0, Col: 0}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_Update(t *testing.T) {
	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGame("123", entity.ModeHuman)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: Update places a mark
		updated, err := gameRepo.Update(ctx, game.ID, func(game *entity.Game) error {
			game.Board[2][2] = entity.PlayerX
			game.Turn = entity.PlayerO
			return nil
		})

		// Then: the changed game is returned and stored
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.Board[2][2])

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: Update is called with non-existent ID
		updated, err := gameRepo.Update(ctx, "9999999", func(*entity.Game) error {
			t.Fatal("fn must not run for a missing game")
			return nil
		})

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, updated)
	})

	t.Run("Update_Rejected", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGame("123", entity.ModeHuman)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: fn changes the game and then fails
		_, err := gameRepo.Update(ctx, game.ID, func(game *entity.Game) error {
			game.Board[0][0] = entity.PlayerX
			return apperror.ErrInvalidMove
		})

		// Then: the error is returned as is and nothing is written
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Update_Conflict", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGame("123", entity.ModeHuman)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: two updates read the same version before either writes
		const writers = 2

		var (
			wg      sync.WaitGroup
			ready   = make(chan struct{}, writers)
			release = make(chan struct{})
			errs    = make([]error, writers)
		)

		for i := range writers {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, errs[i] = gameRepo.Update(ctx, game.ID, func(game *entity.Game) error {
					ready <- struct{}{}
					<-release

					game.Board[0][i] = entity.PlayerX
					return nil
				})
			}()
		}

		for range writers {
			select {
			case <-ready:
			case <-time.After(10 * time.Second):
				t.Fatal("updates did not start")
			}
		}
		close(release)
		wg.Wait()

		// Then: exactly one write lands and the other reports a conflict
		var conflicts int
		for _, err := range errs {
			if err == nil {
				continue
			}
			require.ErrorIs(t, err, apperror.ErrGameConflict)
			conflicts++
		}
		assert.Equal(t, 1, conflicts)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)

		var marks int
		for _, cell := range stored.Board[0] {
			if cell == entity.PlayerX {
				marks++
			}
		}
		assert.Equal(t, 1, marks)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a finished game
		game := entity.NewGame("123", entity.ModeHuman)
		game.Result = entity.Tie()

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a non-existent game ID
		nonExistentGameID := "9999999"

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
