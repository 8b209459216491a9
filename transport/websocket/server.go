package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type uGame interface {
	CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	MakeAITurn(ctx context.Context, id string) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	SwitchMode(ctx context.Context, id string, mode entity.Mode) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	validate   *validator.Validate
	upgrader   websocket.Upgrader
	thinkDelay time.Duration

	handlers map[string]handlerFunc
}

// New - creates a WebSocket server. thinkDelay is the pause before the AI answers a human turn.
func New(logger *slog.Logger, uGame uGame, thinkDelay time.Duration) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		uGame:      uGame,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		thinkDelay: thinkDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionGetGame] = server.handleGetGame
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionSwitchMode] = server.handleSwitchMode

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - serves WebSocket connections on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves it until the client goes away.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	ctx := req.Context()

	// hijacked connections are not closed by http.Server.Shutdown
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established", "remote_addr", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}

			if isDecodeError(err) {
				log.Warn("failed to unmarshal message", "error", err)
				if err = that.sendError(conn, "", "malformed message"); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err := that.sendError(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, conn, message.Payload); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func (that *Server) sendGame(conn *websocket.Conn, game *entity.Game) error {
	return that.sendMessage(conn, actionUpdate, ResponsePayload{Game: game})
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(conn, actionError, ResponsePayload{Error: reason, Action: action})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
