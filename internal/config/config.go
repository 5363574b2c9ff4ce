package config

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"AYOAYO_LOG_LEVEL" env-default:"info"`
	Redis    Redis   `yaml:"redis"`
	Players  Players `yaml:"players"`
	GameID   string  `yaml:"game-id" env:"AYOAYO_GAME_ID"`

	// DeleteFinished drops a game from storage once it has ended.
	DeleteFinished bool `yaml:"delete-finished" env:"AYOAYO_DELETE_FINISHED"`
}

type Redis struct {
	Host string `yaml:"host" env:"AYOAYO_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"AYOAYO_REDIS_PORT" env-default:"6379"`
}

// Players - names seated when a new game is created.
type Players struct {
	First  string `yaml:"first" env:"AYOAYO_PLAYER_FIRST" env-default:"Player 1"`
	Second string `yaml:"second" env:"AYOAYO_PLAYER_SECOND" env-default:"Player 2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// SlogLevel - maps log-level to a slog level; unknown values fall back to info.
func (that *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}
