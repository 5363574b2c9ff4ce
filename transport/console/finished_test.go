package console

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
	"github.com/rocketscienceinc/ayoayo-backend/internal/entity"
	"github.com/rocketscienceinc/ayoayo-backend/internal/usecase"
)

// memoryRepo keeps games as JSON, like the Redis repository does.
type memoryRepo struct {
	games map[string][]byte
}

func (m *memoryRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	payload, err := json.Marshal(game)
	if err != nil {
		return err
	}

	m.games[game.ID] = payload

	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	payload, ok := m.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(payload, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (m *memoryRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := m.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(m.games, id)

	return nil
}

func TestServer_Start_FinishedGameDeleted(t *testing.T) {
	ctx := context.Background()

	// Given: a game manager that drops finished games from storage
	repo := &memoryRepo{games: make(map[string][]byte)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repo, true)

	game, err := manager.CreateGame(ctx, "Jensen", "Brian")
	require.NoError(t, err)

	var out strings.Builder
	server := New(logger, manager, game.ID, &out)

	input := strings.NewReader("play 1 1\nplay 1 2\nplay 1 3\nplay 1 4\nplay 1 5\nplay 1 6\nplay 2 1\nwinner\nboard\n")

	// When: the game is played to the end and more commands follow
	err = server.Start(ctx, input)

	// Then: the game is gone from storage but the console still answers from the final state
	require.NoError(t, err)
	assert.Empty(t, repo.games)

	got := out.String()
	assert.NotContains(t, got, "game not found")

	finalBoard := "player1:\nstore: 12\n[0, 0, 0, 0, 0, 0]\nplayer2:\nstore: 36\n[0, 0, 0, 0, 0, 0]\n"
	assert.True(t, strings.HasSuffix(got, "Winner is player 2: Brian\n"+
		"game is ended\n"+
		"Winner is player 2: Brian\n"+
		finalBoard), got)
}
