package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: missing values fall back to their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "Player 1", conf.Players.First)
		assert.Equal(t, "Player 2", conf.Players.Second)
		assert.Empty(t, conf.GameID)
		assert.False(t, conf.DeleteFinished)
	})

	t.Run("Reads file values", func(t *testing.T) {
		// Given: a full config file
		path := writeConfig(t, `
redis:
  host: redis
  port: "6380"
players:
  first: Jensen
  second: Brian
game-id: abc
delete-finished: true
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values are used
		require.NoError(t, err)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "Jensen", conf.Players.First)
		assert.Equal(t, "Brian", conf.Players.Second)
		assert.Equal(t, "abc", conf.GameID)
		assert.True(t, conf.DeleteFinished)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "players:\n  first: Jensen\n")
		t.Setenv("AYOAYO_PLAYER_FIRST", "Alice")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "Alice", conf.Players.First)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			conf := &Config{LogLevel: tt.logLevel}

			assert.Equal(t, tt.expected, conf.SlogLevel())
		})
	}
}
