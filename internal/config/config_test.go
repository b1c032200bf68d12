package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, 13, cfg.ScoreLimit)
	assert.Equal(t, 3, cfg.ShotLimit)
	assert.Equal(t, 3, cfg.DicePerRound)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Equal(t, 99, cfg.MaxPlayers)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.True(t, cfg.ClearScreen)
	assert.True(t, cfg.Color)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ZOMBIED_SCORE_LIMIT", "20")
	t.Setenv("ZOMBIED_LANG", "pt-BR")
	t.Setenv("ZOMBIED_SEED", "42")
	t.Setenv("ZOMBIED_CLEAR_SCREEN", "false")
	t.Setenv("ZOMBIED_LOG_FILE", "/tmp/zombied.log")
	t.Setenv("ZOMBIED_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.ScoreLimit)
	assert.Equal(t, "pt-BR", cfg.Lang)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.ClearScreen)
	assert.Equal(t, "/tmp/zombied.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("ZOMBIED_SHOT_LIMIT=4\nZOMBIED_MAX_PLAYERS=6\n"), 0o600))

	// The environment wins over the file
	t.Setenv("ZOMBIED_MAX_PLAYERS", "5")
	// Registered so the variable the file sets is cleaned up after the test
	t.Setenv("ZOMBIED_SHOT_LIMIT", "")
	require.NoError(t, os.Unsetenv("ZOMBIED_SHOT_LIMIT"))

	cfg, err := Load(file)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ShotLimit)
	assert.Equal(t, 5, cfg.MaxPlayers)
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("ZOMBIED_SCORE_LIMIT", "lots")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{ScoreLimit: 13, ShotLimit: 3, DicePerRound: 3, MinPlayers: 2, MaxPlayers: 99}
	}

	testCases := []struct {
		name   string
		mutate func(c *Config)
		err    error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero score limit", mutate: func(c *Config) { c.ScoreLimit = 0 }, err: ErrInvalidScoreLimit},
		{name: "zero shot limit", mutate: func(c *Config) { c.ShotLimit = 0 }, err: ErrInvalidShotLimit},
		{name: "no dice", mutate: func(c *Config) { c.DicePerRound = 0 }, err: ErrInvalidDicePerRound},
		{name: "more dice than the cup", mutate: func(c *Config) { c.DicePerRound = 14 }, err: ErrInvalidDicePerRound},
		{name: "largest draw the cup covers", mutate: func(c *Config) { c.DicePerRound = 11 }},
		{name: "largest shot limit the cup covers", mutate: func(c *Config) { c.ShotLimit = 11 }},
		{name: "draw of 12 can run the cup dry", mutate: func(c *Config) { c.DicePerRound = 12 }, err: ErrInvalidDicePerRound},
		{name: "draw of 13 can run the cup dry", mutate: func(c *Config) { c.DicePerRound = 13 }, err: ErrInvalidDicePerRound},
		{name: "shot limit of 20 can run the cup dry", mutate: func(c *Config) { c.ShotLimit = 20 }, err: ErrInvalidDicePerRound},
		{name: "no players", mutate: func(c *Config) { c.MinPlayers = 0 }, err: ErrInvalidPlayerLimits},
		{name: "max below min", mutate: func(c *Config) { c.MaxPlayers = 1 }, err: ErrInvalidPlayerLimits},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_InvalidSettings(t *testing.T) {
	t.Setenv("ZOMBIED_MIN_PLAYERS", "10")
	t.Setenv("ZOMBIED_MAX_PLAYERS", "4")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalidPlayerLimits)
}
