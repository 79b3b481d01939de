package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hotseat-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/pkg"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns the session games: one hotseat game per session ID.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger,
		gameRepo: gameRepo,
	}
}

// GetOrCreateGame - returns the session's game, creating a fresh one when the
// session is new or its game has expired. An empty id starts a new session.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		id = pkg.GenerateNewSessionID()
	}

	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err == nil {
		return existingGame, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	newGame := entity.NewGame(id)
	if err = that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return newGame, nil
}

// PlaceMarker - applies the current turn's mark to the given cell. An invalid
// move (occupied cell, bad index, decided game) is a no-op: it is logged and
// the unchanged game comes back, mirroring the silent-ignore contract of the
// board UI.
func (that *GameManager) PlaceMarker(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "PlaceMarker")

	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.MakeTurn(existingGame, cell); err != nil {
		if isIgnorableMove(err) {
			log.Debug("move ignored", "game", id, "cell", cell, "reason", err)
			return existingGame, nil
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if existingGame.IsFinished() {
		log.Info("game decided", "game", id, "winner", existingGame.Winner)
	}

	return existingGame, nil
}

// ResetGame - returns the session's game to its starting state.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	existingGame.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game reset", "game", id)

	return existingGame, nil
}

// DeleteGame - drops the session's game from the store.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// isIgnorableMove - invalid moves are swallowed, not surfaced to the player.
func isIgnorableMove(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrGameFinished)
}
