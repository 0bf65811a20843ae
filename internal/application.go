package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playgrid/tictactoe-backend/internal/config"
	"github.com/playgrid/tictactoe-backend/internal/engine"
	"github.com/playgrid/tictactoe-backend/internal/repository"
	"github.com/playgrid/tictactoe-backend/internal/repository/storage"
	"github.com/playgrid/tictactoe-backend/internal/service"
	"github.com/playgrid/tictactoe-backend/internal/transport/rest"
	"github.com/playgrid/tictactoe-backend/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisClient, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	sqliteConn, err := storage.NewSQLite(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if closeErr := sqliteConn.Close(); closeErr != nil {
			log.Error("could not close sqlite storage", "error", closeErr)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisClient)
	gameRepo := repository.NewGameRepository(redisClient)

	scoreRepo := repository.NewScoreRepository(sqliteConn)
	if err = scoreRepo.Init(ctx); err != nil {
		return fmt.Errorf("could not init score storage: %w", err)
	}

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(engine.NewSelector())
	scoreService := service.NewScoreService(scoreRepo)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService, scoreService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, scoreService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gamePlayService, playerService)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("application context canceled, shutting down")
		return nil
	}
}
