package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func TestGameManager_ConcurrentTurns(t *testing.T) {
	ctx, st := suite.New(t)

	gameService := service.NewGameService(repository.NewGameRepository(st.Storage, 0))
	manager := NewGameManager(st.Logger, gameService, service.NewBotService(st.Logger))

	const rounds = 50

	for range rounds {
		// Given: a fresh human game
		game, err := manager.CreateGame(ctx, entity.ModeHuman)
		require.NoError(t, err)

		// When: two requests play different cells at the same time
		var (
			wg   sync.WaitGroup
			errs [2]error
		)

		for i := range errs {
			wg.Add(1)

			go func() {
				defer wg.Done()
				_, errs[i] = manager.MakeTurn(ctx, game.ID, entity.Move{Row: 0, Col: i})
			}()
		}
		wg.Wait()

		// Then: every accepted turn is on the board and every rejected one is a conflict
		var accepted int
		for _, err := range errs {
			if err == nil {
				accepted++
				continue
			}
			require.ErrorIs(t, err, apperror.ErrGameConflict)
		}

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)

		var marks int
		for _, row := range stored.Board {
			for _, cell := range row {
				if cell != entity.EmptyCell {
					marks++
				}
			}
		}

		require.Positive(t, accepted)
		assert.Equal(t, accepted, marks)
		if marks == 1 {
			assert.Equal(t, entity.PlayerO, stored.Turn)
		}
	}
}
