package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/hotseat-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

// fakeGameRepo is a map-backed stand-in for the redis repository.
type fakeGameRepo struct {
	games   map[string]*entity.Game
	failing bool
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*entity.Game)}
}

func (that *fakeGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	if that.failing {
		return errRedisDown
	}

	stored := *game
	that.games[game.ID] = &stored

	return nil
}

func (that *fakeGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	if that.failing {
		return nil, errRedisDown
	}

	stored, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	game := *stored

	return &game, nil
}

func (that *fakeGameRepo) DeleteByID(_ context.Context, id string) error {
	if that.failing {
		return errRedisDown
	}

	delete(that.games, id)

	return nil
}

func newTestManager(repo gameRepo) *GameManager {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewGameManager(logger, repo)
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new game when the session id is empty", func(t *testing.T) {
		// Given: an empty store
		repo := newFakeGameRepo()
		manager := newTestManager(repo)

		// When: asking for a game without a session id
		game, err := manager.GetOrCreateGame(ctx, "")

		// Then: a fresh game should be created and stored
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Contains(t, repo.games, game.ID)
	})

	t.Run("Returns the existing game for a known session", func(t *testing.T) {
		// Given: a store holding a game mid-play
		repo := newFakeGameRepo()
		manager := newTestManager(repo)

		existing := entity.NewGame("session-1")
		existing.Board[0] = entity.PlayerX
		existing.Turn = entity.PlayerO
		require.NoError(t, repo.CreateOrUpdate(ctx, existing))

		// When: asking for the game by its session id
		game, err := manager.GetOrCreateGame(ctx, "session-1")

		// Then: the stored game should come back unchanged
		require.NoError(t, err)
		assert.Equal(t, existing, game)
	})

	t.Run("Returns an error when the store is down", func(t *testing.T) {
		// Given: a failing store
		repo := newFakeGameRepo()
		repo.failing = true
		manager := newTestManager(repo)

		// When: asking for a game
		game, err := manager.GetOrCreateGame(ctx, "session-1")

		// Then: the error should surface and no game should come back
		require.Error(t, err)
		assert.Nil(t, game)
	})
}

func TestGameManager_PlaceMarker(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies a valid move and persists it", func(t *testing.T) {
		// Given: a fresh game in the store
		repo := newFakeGameRepo()
		manager := newTestManager(repo)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("session-1")))

		// When: placing the first marker on cell 4
		game, err := manager.PlaceMarker(ctx, "session-1", 4)

		// Then: X should be on cell 4, O to move, and the store updated
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, entity.PlayerX, repo.games["session-1"].Board[4])
	})

	t.Run("Ignores a move on an occupied cell", func(t *testing.T) {
		// Given: a game with cell 4 already taken
		repo := newFakeGameRepo()
		manager := newTestManager(repo)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("session-1")))
		_, err := manager.PlaceMarker(ctx, "session-1", 4)
		require.NoError(t, err)

		// When: the same cell is played again
		game, err := manager.PlaceMarker(ctx, "session-1", 4)

		// Then: no error, and the game comes back unchanged
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Ignores an out-of-range cell", func(t *testing.T) {
		// Given: a fresh game in the store
		repo := newFakeGameRepo()
		manager := newTestManager(repo)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("session-1")))

		// When: a cell outside the board is played
		game, err := manager.PlaceMarker(ctx, "session-1", 42)

		// Then: no error, and the board stays empty
		require.NoError(t, err)
		assert.Equal(t, [9]string{}, game.Board)
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Ignores moves after the game is decided", func(t *testing.T) {
		// Given: a game won by X
		repo := newFakeGameRepo()
		manager := newTestManager(repo)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("session-1")))
		for _, cell := range []int{0, 3, 1, 4, 2} {
			_, err := manager.PlaceMarker(ctx, "session-1", cell)
			require.NoError(t, err)
		}

		// When: another cell is played
		game, err := manager.PlaceMarker(ctx, "session-1", 8)

		// Then: no error, the board and outcome stay as they were
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, entity.EmptyCell, game.Board[8])
	})

	t.Run("Returns an error for an unknown session", func(t *testing.T) {
		// Given: an empty store
		repo := newFakeGameRepo()
		manager := newTestManager(repo)

		// When: placing a marker for a session that has no game
		game, err := manager.PlaceMarker(ctx, "missing", 0)

		// Then: the not-found error should surface
		require.Error(t, err)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGameManager_ResetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Resets a decided game back to the starting state", func(t *testing.T) {
		// Given: a game won by X
		repo := newFakeGameRepo()
		manager := newTestManager(repo)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("session-1")))
		for _, cell := range []int{0, 3, 1, 4, 2} {
			_, err := manager.PlaceMarker(ctx, "session-1", cell)
			require.NoError(t, err)
		}

		// When: resetting the game
		game, err := manager.ResetGame(ctx, "session-1")

		// Then: the board is empty, X moves first, outcome undecided, store updated
		require.NoError(t, err)
		assert.Equal(t, [9]string{}, game.Board)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Nil(t, game.Line)
		assert.Equal(t, entity.StatusOngoing, repo.games["session-1"].Status)
	})

	t.Run("Returns an error for an unknown session", func(t *testing.T) {
		// Given: an empty store
		repo := newFakeGameRepo()
		manager := newTestManager(repo)

		// When: resetting a session that has no game
		game, err := manager.ResetGame(ctx, "missing")

		// Then: the not-found error should surface
		require.Error(t, err)
		assert.Nil(t, game)
	})
}
