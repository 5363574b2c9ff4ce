package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ayoayo-backend/internal/config"
	"github.com/rocketscienceinc/ayoayo-backend/internal/repository"
	"github.com/rocketscienceinc/ayoayo-backend/internal/repository/storage"
	"github.com/rocketscienceinc/ayoayo-backend/internal/usecase"
	"github.com/rocketscienceinc/ayoayo-backend/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	gameManager := usecase.NewGameManager(logger, gameRepo, conf.DeleteFinished)

	gameID, err := resolveGame(ctx, gameManager, conf)
	if err != nil {
		return err
	}

	log.Info("Starting console", "game_id", gameID)

	if err = console.New(logger, gameManager, gameID, os.Stdout).Start(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

// resolveGame - resumes the configured game or starts a new one.
func resolveGame(ctx context.Context, gameManager *usecase.GameManager, conf *config.Config) (string, error) {
	if conf.GameID != "" {
		game, err := gameManager.GetGame(ctx, conf.GameID)
		if err != nil {
			return "", fmt.Errorf("could not resume game: %w", err)
		}

		return game.ID, nil
	}

	game, err := gameManager.CreateGame(ctx, conf.Players.First, conf.Players.Second)
	if err != nil {
		return "", fmt.Errorf("could not create game: %w", err)
	}

	return game.ID, nil
}
