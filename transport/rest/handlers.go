package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type uGame interface {
	CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	MakeAITurn(ctx context.Context, id string) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	SwitchMode(ctx context.Context, id string, mode entity.Mode) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type modeRequest struct {
	Mode entity.Mode `json:"mode" binding:"required,oneof=human ai"`
}

type turnRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

// NewRouter - builds the HTTP API the browser client talks to.
func NewRouter(logger *slog.Logger, uGame uGame) *gin.Engine {
	that := &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ping", that.ping)

	games := router.Group("/api/games")
	games.POST("", that.createGame)
	games.GET("/:id", that.getGame)
	games.DELETE("/:id", that.deleteGame)
	games.POST("/:id/turns", that.makeTurn)
	games.POST("/:id/ai-turn", that.makeAITurn)
	games.POST("/:id/reset", that.resetGame)
	games.PUT("/:id/mode", that.switchMode)

	return router
}

func (that *handlers) createGame(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		that.abortWithBindError(c, err)
		return
	}

	game, err := that.uGame.CreateGame(c.Request.Context(), req.Mode)
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (that *handlers) getGame(c *gin.Context) {
	game, err := that.uGame.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *handlers) deleteGame(c *gin.Context) {
	if err := that.uGame.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		that.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *handlers) makeTurn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		that.abortWithBindError(c, err)
		return
	}

	game, err := that.uGame.MakeTurn(c.Request.Context(), c.Param("id"), entity.Move{Row: *req.Row, Col: *req.Col})
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *handlers) makeAITurn(c *gin.Context) {
	game, err := that.uGame.MakeAITurn(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *handlers) resetGame(c *gin.Context) {
	game, err := that.uGame.ResetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *handlers) switchMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		that.abortWithBindError(c, err)
		return
	}

	game, err := that.uGame.SwitchMode(c.Request.Context(), c.Param("id"), req.Mode)
	if err != nil {
		that.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *handlers) abortWithBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, strings.ToLower(fieldErr.Field())+" failed on "+fieldErr.Tag())
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + strings.Join(fields, ", ")})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
}

func (that *handlers) abortWithError(c *gin.Context, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(status, errorResponse{Error: http.StatusText(status)})
		return
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

// StatusFromError maps domain errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNotAITurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNoLegalMoves),
		errors.Is(err, apperror.ErrGameConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
