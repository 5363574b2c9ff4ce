package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ayoayo-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	deleteFinished bool
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, deleteFinished bool) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:       gameRepo,
		deleteFinished: deleteFinished,
	}
}

// CreateGame - starts a new game with both seats taken and stores it.
func (that *GameManager) CreateGame(ctx context.Context, firstName, secondName string) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	for _, name := range []string{firstName, secondName} {
		if _, err := game.CreatePlayer(name); err != nil {
			return nil, fmt.Errorf("failed to seat player: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "first", firstName, "second", secondName)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays one move of a stored game. The game is saved only when the move is accepted.
func (that *GameManager) MakeTurn(ctx context.Context, id string, seat entity.Seat, pit int) (*entity.Game, *entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id, "seat", int(seat), "pit", pit)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	result, err := game.PlayTurn(seat, pit)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return game, nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move played", "board", result.Board, "extra_turn", result.ExtraTurn, "captured", result.Captured)

	if result.Ended && that.deleteFinished && that.deleteGame(ctx, game) {
		return game, result, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed update game: %w", err)
	}

	if result.Ended {
		log.Info("game finished", "result", game.ReturnWinner())
	}

	return game, result, nil
}

// Winner - reports the outcome text of a stored game.
func (that *GameManager) Winner(ctx context.Context, id string) (string, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return "", err
	}

	return game.ReturnWinner(), nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// deleteGame - drops a finished game. On failure the caller saves the ended game instead,
// so the stored copy never predates the final move.
func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) bool {
	log := that.logger.With("method", "deleteGame", "game_id", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game, saving it instead", "error", err)
		return false
	}

	log.Info("game finished and deleted", "result", game.ReturnWinner())

	return true
}
