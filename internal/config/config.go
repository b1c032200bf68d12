package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/KirkDiggler/zombied/internal/common/logger"
	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name
const Prefix = "ZOMBIED_"

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidScoreLimit   ConfigError = "score limit must be positive"
	ErrInvalidShotLimit    ConfigError = "shot limit must be positive"
	ErrInvalidDicePerRound ConfigError = "dice per round plus shot limit minus one cannot exceed the number of dice"
	ErrInvalidPlayerLimits ConfigError = "player limits must satisfy 1 <= min <= max"
)

// Config holds the settings of a zombied session
type Config struct {
	// ScoreLimit is the score that ends the game
	ScoreLimit int `env:"SCORE_LIMIT" envDefault:"13"`

	// ShotLimit is how many shots bust a turn
	ShotLimit int `env:"SHOT_LIMIT" envDefault:"3"`

	// DicePerRound is how many dice a player holds before each roll
	DicePerRound int `env:"DICE_PER_ROUND" envDefault:"3"`

	MinPlayers int `env:"MIN_PLAYERS" envDefault:"2"`
	MaxPlayers int `env:"MAX_PLAYERS" envDefault:"99"`

	// Lang picks the text catalog, e.g. en or pt-BR
	Lang string `env:"LANG" envDefault:"en"`

	// Seed makes dice reproducible, 0 seeds from the clock
	Seed int64 `env:"SEED" envDefault:"0"`

	// ClearScreen clears the terminal between turns
	ClearScreen bool `env:"CLEAR_SCREEN" envDefault:"true"`

	// Color paints dice with ANSI colors
	Color bool `env:"COLOR" envDefault:"true"`

	Log logger.Config `envPrefix:"LOG_"`
}

// Load reads the given .env files, if they exist, and then the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings can make a playable game
func (c *Config) Validate() error {
	if c.ScoreLimit < 1 {
		return ErrInvalidScoreLimit
	}

	if c.ShotLimit < 1 {
		return ErrInvalidShotLimit
	}

	if c.DicePerRound < 1 || !dice.DefaultInventory().CoversTurn(c.DicePerRound, c.ShotLimit) {
		return ErrInvalidDicePerRound
	}

	if c.MinPlayers < 1 || c.MaxPlayers < c.MinPlayers {
		return ErrInvalidPlayerLimits
	}

	return nil
}
