package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MakeTurn applies a move for player and advances the session state.
func MakeTurn(game *entity.Game, player entity.Mark, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if err := ApplyMove(&game.Board, move, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	recordLastMove(game, player, move)
	updateGameStatus(game, player)

	return nil
}

// recordLastMove - remembers the latest move of each side for highlighting.
func recordLastMove(game *entity.Game, player entity.Mark, move entity.Move) {
	if game.IsAIMark(player) {
		game.LastAIMove = &move
		return
	}

	game.LastHumanMove = &move
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.Mark) {
	game.Result = CheckGameOver(game.Board)

	if game.Result.IsTerminal() {
		game.Turn = entity.EmptyCell
		return
	}

	game.Turn = player.Opponent()
}
