package main

import (
	"fmt"
	"os"

	"github.com/lox/hexfall/game"
	"github.com/lox/hexfall/internal/display"
	"github.com/lox/hexfall/internal/simulator"
)

// ReplayCmd plays one game and prints the position after each move. Given
// a seed from a simulation report and the same strategy, it reproduces that
// game exactly.
type ReplayCmd struct {
	Seed     string `arg:"" help:"Game seed, e.g. the best seed from a simulation report"`
	Strategy string `default:"greedy" enum:"first,greedy,random" help:"Move strategy"`
	MaxMoves int    `default:"1000" help:"Stop after this many moves"`
	Quiet    bool   `short:"q" help:"Only print the final position"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	strategy, err := simulator.NewGameStrategy(c.Strategy, c.Seed)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	r := display.New(os.Stdout, g.NoColor)
	var last game.State

	observe := func(n int, m simulator.Move, e *game.Engine) {
		last = e.State()
		if c.Quiet {
			return
		}
		fmt.Printf("\nMove %d: %s orientation %d at %s\n", n, m.TypeID, m.Orientation, m.Origin)
		fmt.Println(r.Game(last))
	}

	result, err := simulator.PlayGameObserved(ctx, c.Seed, strategy, cfg.Game, c.MaxMoves, observe,
		game.WithLogger(logger))
	if err != nil {
		return err
	}

	if c.Quiet && result.Moves > 0 {
		fmt.Println(r.Game(last))
	}
	fmt.Printf("\nFinal score %d after %d moves (level %d, %d lines", result.Score, result.Moves, result.Level, result.LinesCleared)
	if !result.GameOver {
		fmt.Printf(", stopped at the move cap")
	}
	fmt.Println(")")
	return nil
}
