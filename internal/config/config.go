// Package config loads hexfall settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hexfall/game"
	"github.com/lox/hexfall/internal/simulator"
)

// Config is the effective configuration after defaults are applied
type Config struct {
	LogLevel   string      `json:"logLevel"`
	Game       game.Config `json:"game"`
	Simulation Simulation  `json:"simulation"`
}

// Simulation holds the batch simulation settings
type Simulation struct {
	Games    int    `json:"games"`
	Workers  int    `json:"workers"` // 0 means one per CPU
	Strategy string `json:"strategy"`
	Seed     string `json:"seed,omitempty"`
	MaxMoves int    `json:"maxMoves"`
}

// fileConfig mirrors the file layout. Pointer fields tell an omitted
// attribute apart from an explicit zero.
type fileConfig struct {
	LogLevel   *string          `hcl:"log_level,optional"`
	Game       *gameBlock       `hcl:"game,block"`
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type gameBlock struct {
	EdgeLength      *int     `hcl:"edge_length,optional"`
	SingleHexRarity *float64 `hcl:"single_hex_rarity,optional"`
	PointsPerLine   *int     `hcl:"points_per_line,optional"`
	PiecesPerSet    *int     `hcl:"pieces_per_set,optional"`
	Seed            *string  `hcl:"seed,optional"`
}

type simulationBlock struct {
	Games    *int    `hcl:"games,optional"`
	Workers  *int    `hcl:"workers,optional"`
	Strategy *string `hcl:"strategy,optional"`
	Seed     *string `hcl:"seed,optional"`
	MaxMoves *int    `hcl:"max_moves,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game:     game.DefaultConfig(),
		Simulation: Simulation{
			Games:    1000,
			Workers:  0,
			Strategy: simulator.StrategyGreedy,
			MaxMoves: simulator.DefaultMaxMoves,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in error messages.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	set(&cfg.LogLevel, fc.LogLevel)

	if g := fc.Game; g != nil {
		set(&cfg.Game.EdgeLength, g.EdgeLength)
		set(&cfg.Game.SingleHexRarity, g.SingleHexRarity)
		set(&cfg.Game.PointsPerLine, g.PointsPerLine)
		set(&cfg.Game.PiecesPerSet, g.PiecesPerSet)
		set(&cfg.Game.Seed, g.Seed)
	}

	if s := fc.Simulation; s != nil {
		set(&cfg.Simulation.Games, s.Games)
		set(&cfg.Simulation.Workers, s.Workers)
		set(&cfg.Simulation.Strategy, s.Strategy)
		set(&cfg.Simulation.Seed, s.Seed)
		set(&cfg.Simulation.MaxMoves, s.MaxMoves)
	}

	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks every setting
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxMoves < 1 {
		return fmt.Errorf("simulation: max moves must be positive, got %d", c.Simulation.MaxMoves)
	}
	if !slices.Contains(simulator.StrategyNames(), c.Simulation.Strategy) {
		return fmt.Errorf("simulation: invalid strategy %s", c.Simulation.Strategy)
	}
	return nil
}
