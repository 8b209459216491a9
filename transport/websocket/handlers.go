package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

var clientErrors = []error{
	apperror.ErrInvalidMove,
	apperror.ErrInvalidMode,
	apperror.ErrNotYourTurn,
	apperror.ErrNotAITurn,
	apperror.ErrGameFinished,
	apperror.ErrGameNotFound,
	apperror.ErrNoLegalMoves,
	apperror.ErrGameConflict,
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	var req newGameRequest
	if ok, err := that.decode(conn, actionNewGame, payload, &req); !ok {
		return err
	}

	game, err := that.uGame.CreateGame(ctx, req.Mode)
	if err != nil {
		return that.sendFailure(conn, actionNewGame, err)
	}

	return that.sendGame(conn, game)
}

func (that *Server) handleGetGame(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	var req gameRequest
	if ok, err := that.decode(conn, actionGetGame, payload, &req); !ok {
		return err
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return that.sendFailure(conn, actionGetGame, err)
	}

	return that.sendGame(conn, game)
}

// handleTurn - applies the human move and, when the AI is to reply, answers after the think delay.
// Messages on one connection are handled in order, so a reset or mode switch
// sent during the delay is applied after the reply. The reply itself re-reads
// the session: if another connection moved it on meanwhile, nothing is sent.
func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	var req turnRequest
	if ok, err := that.decode(conn, actionTurn, payload, &req); !ok {
		return err
	}

	game, err := that.uGame.MakeTurn(ctx, req.GameID, *req.Move)
	if err != nil {
		return that.sendFailure(conn, actionTurn, err)
	}

	if err = that.sendGame(conn, game); err != nil {
		return err
	}

	if !game.IsAITurn() {
		return nil
	}

	if err = sleep(ctx, that.thinkDelay); err != nil {
		return nil //nolint: nilerr // the connection is going away
	}

	game, err = that.uGame.MakeAITurn(ctx, req.GameID)
	if errors.Is(err, apperror.ErrNotAITurn) || errors.Is(err, apperror.ErrGameFinished) {
		that.logger.Debug("ai reply skipped", "game_id", req.GameID, "reason", err)
		return nil
	}

	if err != nil {
		return that.sendFailure(conn, actionTurn, err)
	}

	return that.sendGame(conn, game)
}

func (that *Server) handleReset(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	var req gameRequest
	if ok, err := that.decode(conn, actionReset, payload, &req); !ok {
		return err
	}

	game, err := that.uGame.ResetGame(ctx, req.GameID)
	if err != nil {
		return that.sendFailure(conn, actionReset, err)
	}

	return that.sendGame(conn, game)
}

func (that *Server) handleSwitchMode(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	var req modeRequest
	if ok, err := that.decode(conn, actionSwitchMode, payload, &req); !ok {
		return err
	}

	game, err := that.uGame.SwitchMode(ctx, req.GameID, req.Mode)
	if err != nil {
		return that.sendFailure(conn, actionSwitchMode, err)
	}

	return that.sendGame(conn, game)
}

// decode - unmarshals and validates payload into req. When it reports false the
// client has already been told why, and the returned error is a write failure if any.
func (that *Server) decode(conn *websocket.Conn, action string, payload json.RawMessage, req any) (bool, error) {
	if len(payload) == 0 {
		return false, that.sendError(conn, action, "payload is required")
	}

	if err := json.Unmarshal(payload, req); err != nil {
		return false, that.sendError(conn, action, "malformed payload")
	}

	if err := that.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return false, that.sendError(conn, action, fmt.Sprintf("invalid payload: %s failed on %s", fieldErr.Field(), fieldErr.Tag()))
		}

		return false, that.sendError(conn, action, "invalid payload")
	}

	return true, nil
}

// sendFailure - reports a use-case error to the client. Only write failures end the connection.
func (that *Server) sendFailure(conn *websocket.Conn, action string, err error) error {
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return that.sendError(conn, action, clientErr.Error())
		}
	}

	that.logger.Error("action failed", "action", action, "error", err)

	return that.sendError(conn, action, "internal error")
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
