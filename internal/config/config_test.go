package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hexfall/game"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexfall.hcl")
	src := `
log_level = "debug"

game {
  edge_length       = 6
  single_hex_rarity = 0
  seed              = "daily"
}

simulation {
  games    = 250
  workers  = 4
  strategy = "random"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, game.Config{
		EdgeLength:      6,
		SingleHexRarity: 0,
		PointsPerLine:   10,
		PiecesPerSet:    3,
		Seed:            "daily",
	}, cfg.Game)
	assert.Equal(t, Simulation{
		Games:    250,
		Workers:  4,
		Strategy: "random",
		MaxMoves: Default().Simulation.MaxMoves,
	}, cfg.Simulation)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", `game {`, "failed to parse"},
		{"unknown attribute", `colour = "red"`, "failed to decode"},
		{"wrong type", "game {\n  edge_length = \"big\"\n}", "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"game", func(c *Config) { c.Game.PiecesPerSet = 0 }, "game: pieces per set"},
		{"games", func(c *Config) { c.Simulation.Games = 0 }, "games must be positive"},
		{"workers", func(c *Config) { c.Simulation.Workers = -1 }, "workers must not be negative"},
		{"max moves", func(c *Config) { c.Simulation.MaxMoves = 0 }, "max moves"},
		{"strategy", func(c *Config) { c.Simulation.Strategy = "psychic" }, "invalid strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
