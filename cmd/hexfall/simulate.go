package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/hexfall/internal/fileutil"
	"github.com/lox/hexfall/internal/simulator"
)

// SimulateCmd plays a batch of games and prints summary statistics.
type SimulateCmd struct {
	Games    int    `short:"n" help:"Number of games to play (overrides config)"`
	Workers  int    `short:"w" help:"Parallel workers, 0 for one per CPU (overrides config)"`
	Seed     string `short:"s" help:"Base seed; game i plays <seed>-<i> (overrides config)"`
	Strategy string `help:"Move strategy: first, greedy or random (overrides config)"`
	MaxMoves int    `help:"Stop each game after this many moves (overrides config)"`
	Out      string `short:"o" help:"Write the full JSON report to this file" type:"path"`
	Progress bool   `help:"Show a progress bar" default:"true" negatable:""`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	sim := &cfg.Simulation
	if c.Games > 0 {
		sim.Games = c.Games
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}
	if c.Seed != "" {
		sim.Seed = c.Seed
	}
	if c.Strategy != "" {
		sim.Strategy = c.Strategy
	}
	if c.MaxMoves > 0 {
		sim.MaxMoves = c.MaxMoves
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	clock := quartz.NewReal()
	simCfg := simulator.Config{
		Games:    sim.Games,
		Workers:  sim.Workers,
		Seed:     sim.Seed,
		Strategy: sim.Strategy,
		Game:     cfg.Game,
		MaxMoves: sim.MaxMoves,
		Logger:   logger,
		Clock:    clock,
	}
	if c.Progress {
		simCfg.Monitor = newProgressMonitor(os.Stderr, clock)
	}

	report, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printSummary(os.Stdout, report)

	if c.Out != "" {
		if err := fileutil.WriteJSON(c.Out, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Out)
	}
	return nil
}

// printSummary prints the headline statistics of a run
func printSummary(w io.Writer, r *simulator.Report) {
	s := r.Summary

	fmt.Fprintf(w, "\n=== RESULTS: %s strategy, seed %q ===\n", r.Strategy, r.Seed)
	fmt.Fprintf(w, "Games played: %d (%d workers, %.1f games/sec)\n", s.Games, r.Workers, r.GamesPerSecond())

	fmt.Fprintf(w, "\n=== SCORE ===\n")
	fmt.Fprintf(w, "Mean: %.1f\n", s.MeanScore)
	fmt.Fprintf(w, "Median: %.1f\n", s.MedianScore)
	fmt.Fprintf(w, "Std Dev: %.1f\n", s.StdDev)
	fmt.Fprintf(w, "95%% CI: [%.1f, %.1f]\n", s.CI95Low, s.CI95High)
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P95=%.0f\n", s.P05, s.P95)
	fmt.Fprintf(w, "Best: %d (seed %q, level %d max)\n", s.MaxScore, s.BestSeed, s.MaxLevel)

	fmt.Fprintf(w, "\n=== PLAY ===\n")
	fmt.Fprintf(w, "Moves per game: %.1f\n", s.MeanMoves)
	fmt.Fprintf(w, "Lines per game: %.2f\n", s.MeanLines)
	fmt.Fprintf(w, "Reached game over: %.1f%% (cap %d moves)\n", s.CompletionRate*100, r.MaxMoves)
}
