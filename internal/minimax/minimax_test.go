package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestFindBestMove(t *testing.T) {
	t.Run("Empty board picks the first cell", func(t *testing.T) {
		// Given: an empty board, every opening is a draw under perfect play

		// When: the bot searches
		move, err := FindBestMove(entity.Board{})

		// Then: the row-major tie-break returns the top-left corner
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Prefers the immediate win", func(t *testing.T) {
		// Given: O can win on the middle row, and (0,2) is scanned first
		board := entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}

		// When: the bot searches
		move, err := FindBestMove(board)

		// Then: it completes its own line instead of blocking
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the first column
		board := entity.Board{{x, e, e}, {e, o, e}, {x, e, e}}

		// When: the bot searches
		move, err := FindBestMove(board)

		// Then: it takes the blocking cell
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
	})

	t.Run("Delays a forced loss", func(t *testing.T) {
		// Given: X threatens the first column and wins by a fork whatever O does
		board := entity.Board{{x, o, e}, {x, e, e}, {e, e, e}}

		// When: the bot searches
		move, err := FindBestMove(board)

		// Then: it blocks, which postpones the loss to X's second move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
		assert.Equal(t, 4-maxScore, Evaluate(board, o, true))
	})

	t.Run("Does not modify the caller's board", func(t *testing.T) {
		// Given: a mid-game board
		board := entity.Board{{x, e, e}, {e, o, e}, {e, e, x}}
		before := board

		// When: the bot searches
		_, err := FindBestMove(board)

		// Then: the board is untouched
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("No legal moves", func(t *testing.T) {
		boards := map[string]entity.Board{
			"X won":      {{x, x, x}, {o, o, e}, {e, e, e}},
			"O won":      {{o, x, x}, {x, o, e}, {e, e, o}},
			"full board": {{x, o, x}, {x, o, o}, {o, x, x}},
		}

		for name, board := range boards {
			t.Run(name, func(t *testing.T) {
				_, err := FindBestMove(board)

				require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
			})
		}
	})
}

func TestFindBestMoveFor(t *testing.T) {
	t.Run("Works for X", func(t *testing.T) {
		// Given: the mirror of the immediate-win position with X to move
		board := entity.Board{{o, o, e}, {x, x, e}, {e, e, e}}

		// When: searching on behalf of X
		move, err := FindBestMoveFor(board, x)

		// Then: X wins on the middle row
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		_, err := FindBestMoveFor(entity.Board{}, e)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is a draw", func(t *testing.T) {
		assert.Equal(t, 0, Evaluate(entity.Board{}, o, false))
		assert.Equal(t, 0, Evaluate(entity.Board{}, x, true))
	})

	t.Run("Decided boards", func(t *testing.T) {
		won := entity.Board{{o, o, o}, {x, x, e}, {x, e, e}}

		assert.Equal(t, maxScore, Evaluate(won, o, false))
		assert.Equal(t, -maxScore, Evaluate(won, x, true))
		assert.Equal(t, 0, Evaluate(entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}, o, true))
	})

	t.Run("Forced win is positive", func(t *testing.T) {
		// Given: O to move with an open line
		board := entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}

		// Then: O wins on the next ply
		assert.Equal(t, maxScore-1, Evaluate(board, o, true))
	})
}

// TestBotNeverLoses plays the bot as O against every possible sequence of X moves.
func TestBotNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search skipped in short mode")
	}

	t.Run("X moves first", func(t *testing.T) {
		games := playAll(t, entity.Board{}, x)
		assert.Positive(t, games)
	})

	t.Run("Bot moves first", func(t *testing.T) {
		games := playAll(t, entity.Board{}, o)
		assert.Positive(t, games)
	})
}

// playAll branches over every X reply and follows the bot's choice for O.
// It returns the number of finished games.
func playAll(t *testing.T, board entity.Board, toMove entity.Mark) int {
	t.Helper()

	result := tictactoe.CheckGameOver(board)
	if result.IsTerminal() {
		if result.Winner == x {
			t.Fatalf("bot lost on board %v", board)
		}
		return 1
	}

	if toMove == o {
		move, err := FindBestMove(board)
		require.NoError(t, err)
		require.Equal(t, e, board[move.Row][move.Col], "bot chose occupied cell %s", move)

		board[move.Row][move.Col] = o
		return playAll(t, board, x)
	}

	games := 0
	for _, move := range tictactoe.EmptyCells(board) {
		next := board
		next[move.Row][move.Col] = x
		games += playAll(t, next, o)
	}

	return games
}
