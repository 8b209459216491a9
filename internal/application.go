package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, conf.Telemetry.ServiceName, conf.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err = shutdownTracing(context.Background()); err != nil {
			log.Error("could not shut down tracing", "error", err)
		}
	}()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Game.SessionTTL)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, gameService, botService)

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager))
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, conf.Game.AIThinkDelay)
		wsErrCh <- wsServer.Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		cancel()
		<-wsErrCh
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		cancel()
		<-httpErrCh
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		if err = errors.Join(<-httpErrCh, <-wsErrCh); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}
