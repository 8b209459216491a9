package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("Opponent", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	})

	t.Run("IsPlayer", func(t *testing.T) {
		assert.True(t, PlayerX.IsPlayer())
		assert.True(t, PlayerO.IsPlayer())
		assert.False(t, EmptyCell.IsPlayer())
		assert.False(t, Mark("Z").IsPlayer())
	})
}

func TestResult(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, Win(PlayerX).IsTerminal())
	assert.True(t, Tie().IsTerminal())
	assert.Equal(t, PlayerO, Win(PlayerO).Winner)
	assert.Equal(t, EmptyCell, Tie().Winner)
}

func TestNewGame(t *testing.T) {
	// When: a new AI game is created
	game := NewGame("123", ModeAI)

	// Then: X moves first on an empty board
	assert.Equal(t, &Game{
		ID:     "123",
		Mode:   ModeAI,
		Turn:   PlayerX,
		Result: InProgress(),
	}, game)
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := &Game{
		ID:            "123",
		Board:         Board{{PlayerX, PlayerX, PlayerX}, {PlayerO, PlayerO, EmptyCell}, {}},
		Mode:          ModeHuman,
		Result:        Win(PlayerX),
		LastHumanMove: &Move{Row: 0, Col: 2},
		LastAIMove:    &Move{Row: 1, Col: 1},
	}

	// When: the game is reset
	game.Reset()

	// Then: the board, turn and last moves are cleared but the session is kept
	assert.Equal(t, NewGame("123", ModeHuman), game)
	assert.False(t, game.IsFinished())
}

func TestGame_SwitchMode(t *testing.T) {
	// Given: a human game in progress
	game := NewGame("123", ModeHuman)
	game.Board[1][1] = PlayerX
	game.Turn = PlayerO

	// When: switching to AI mode
	game.SwitchMode(ModeAI)

	// Then: the round restarts in the new mode
	assert.Equal(t, NewGame("123", ModeAI), game)
	assert.True(t, game.IsWithAI())
}

func TestGame_IsAITurn(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want bool
	}{
		{
			name: "O to move against the bot",
			game: Game{Mode: ModeAI, Turn: PlayerO, Result: InProgress()},
			want: true,
		},
		{
			name: "X to move against the bot",
			game: Game{Mode: ModeAI, Turn: PlayerX, Result: InProgress()},
		},
		{
			name: "O to move against a human",
			game: Game{Mode: ModeHuman, Turn: PlayerO, Result: InProgress()},
		},
		{
			name: "Finished game",
			game: Game{Mode: ModeAI, Turn: PlayerO, Result: Tie()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.IsAITurn())
		})
	}
}

func TestGame_IsAIMark(t *testing.T) {
	ai := NewGame("1", ModeAI)
	human := NewGame("2", ModeHuman)

	assert.True(t, ai.IsAIMark(PlayerO))
	assert.False(t, ai.IsAIMark(PlayerX))
	assert.False(t, human.IsAIMark(PlayerO))
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModeHuman.IsValid())
	assert.True(t, ModeAI.IsValid())
	assert.False(t, Mode("online").IsValid())
	assert.False(t, Mode("").IsValid())
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "(1,2)", Move{Row: 1, Col: 2}.String())
}
