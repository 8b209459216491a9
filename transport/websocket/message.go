package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionNewGame    = "game:new"
	actionGetGame    = "game:get"
	actionTurn       = "game:turn"
	actionReset      = "game:reset"
	actionSwitchMode = "game:mode"

	actionUpdate = "game:update"
	actionError  = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Game `json:"game,omitempty"`
	Error  string       `json:"error,omitempty"`
	Action string       `json:"action,omitempty"`
}

type newGameRequest struct {
	Mode entity.Mode `json:"mode" validate:"required,oneof=human ai"`
}

type gameRequest struct {
	GameID string `json:"game_id" validate:"required"`
}

type turnRequest struct {
	GameID string       `json:"game_id" validate:"required"`
	Move   *entity.Move `json:"move" validate:"required"`
}

type modeRequest struct {
	GameID string      `json:"game_id" validate:"required"`
	Mode   entity.Mode `json:"mode" validate:"required,oneof=human ai"`
}
