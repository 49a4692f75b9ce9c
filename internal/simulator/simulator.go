package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hexfall/game"
	"github.com/lox/hexfall/internal/randutil"
	"github.com/lox/hexfall/internal/runid"
	"github.com/lox/hexfall/internal/statistics"
)

// DefaultMaxMoves caps a game that a strong strategy could otherwise play
// forever.
const DefaultMaxMoves = 1000

// Monitor receives progress callbacks. Both methods are called from the
// goroutine running Run, never concurrently.
type Monitor interface {
	OnStart(total int)
	OnGameComplete(done, total int)
}

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int    // defaults to the number of CPUs
	Seed     string // base seed; game i plays "<Seed>-<i>". Empty uses a fresh run id
	Strategy string
	Game     game.Config
	MaxMoves int
	Logger   *log.Logger
	Clock    quartz.Clock
	Monitor  Monitor
}

// Report is the outcome of a simulation run
type Report struct {
	Strategy string                  `json:"strategy"`
	Seed     string                  `json:"seed"`
	Workers  int                     `json:"workers"`
	MaxMoves int                     `json:"maxMoves"`
	Game     game.Config             `json:"game"`
	Summary  statistics.Summary      `json:"summary"`
	Results  []statistics.GameResult `json:"results"`
	Elapsed  time.Duration           `json:"elapsedNs"`

	Stats *statistics.Statistics `json:"-"`
}

// GamesPerSecond returns the simulation throughput
func (r *Report) GamesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(len(r.Results)) / r.Elapsed.Seconds()
}

// Simulator plays batches of games with a fixed strategy
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults for unset fields
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Strategy == "" {
		config.Strategy = StrategyGreedy
	}
	if config.Game == (game.Config{}) {
		config.Game = game.DefaultConfig()
	}
	if config.MaxMoves <= 0 {
		config.MaxMoves = DefaultMaxMoves
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Seed == "" {
		config.Seed = runid.New(config.Clock)
	}
	return &Simulator{config: config}
}

// GameSeed returns the seed game i of a run with the given base seed uses.
func GameSeed(base string, i int) string {
	return base + "-" + strconv.Itoa(i)
}

func (s *Simulator) validate() error {
	if s.config.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if err := s.config.Game.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	if _, err := NewStrategy(s.config.Strategy, randutil.New(0)); err != nil {
		return err
	}
	return nil
}

// Run plays every game and returns the results in game order. Each game
// depends only on its own seed, so the report is the same for any worker
// count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cfg := s.config
	workers := min(cfg.Workers, cfg.Games)
	start := cfg.Clock.Now()

	cfg.Logger.Info("Starting simulation",
		"games", cfg.Games,
		"workers", workers,
		"strategy", cfg.Strategy,
		"seed", cfg.Seed)

	if cfg.Monitor != nil {
		cfg.Monitor.OnStart(cfg.Games)
	}

	results := make([]statistics.GameResult, cfg.Games)
	jobs := make(chan int)
	done := make(chan int, workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range cfg.Games {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			for i := range jobs {
				seed := GameSeed(cfg.Seed, i)
				strategy, err := NewGameStrategy(cfg.Strategy, seed)
				if err != nil {
					return err
				}
				result, err := PlayGame(gctx, seed, strategy, cfg.Game, cfg.MaxMoves)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				results[i] = result

				select {
				case done <- i:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(done)
		_ = g.Wait()
	}()

	completed := 0
	for i := range done {
		completed++
		cfg.Logger.Debug("Game complete",
			"game", i,
			"score", results[i].Score,
			"moves", results[i].Moves)
		if cfg.Monitor != nil {
			cfg.Monitor.OnGameComplete(completed, cfg.Games)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		Strategy: cfg.Strategy,
		Seed:     cfg.Seed,
		Workers:  workers,
		MaxMoves: cfg.MaxMoves,
		Game:     cfg.Game,
		Summary:  stats.Summarize(),
		Results:  results,
		Elapsed:  cfg.Clock.Since(start),
		Stats:    stats,
	}

	cfg.Logger.Info("Simulation complete",
		"games", cfg.Games,
		"meanScore", fmt.Sprintf("%.1f", report.Summary.MeanScore),
		"maxScore", report.Summary.MaxScore,
		"elapsed", report.Elapsed)

	return report, nil
}

// NewGameStrategy creates the strategy used for the game with the given
// seed. The random strategy draws from its own stream derived from the seed,
// so a game replays identically outside the simulator.
func NewGameStrategy(name, seed string) (Strategy, error) {
	return NewStrategy(name, randutil.FromString(seed+"/strategy"))
}

// MoveObserver is called after every successful move.
type MoveObserver func(n int, m Move, e *game.Engine)

// PlayGame plays one game from seed until it ends or maxMoves pieces have
// been placed. A maxMoves of zero or less means no cap. Cancellation is
// checked between moves.
func PlayGame(ctx context.Context, seed string, strategy Strategy, cfg game.Config, maxMoves int) (statistics.GameResult, error) {
	return PlayGameObserved(ctx, seed, strategy, cfg, maxMoves, nil)
}

// PlayGameObserved is PlayGame with a callback after each move.
func PlayGameObserved(ctx context.Context, seed string, strategy Strategy, cfg game.Config, maxMoves int, observe MoveObserver, opts ...game.Option) (statistics.GameResult, error) {
	cfg.Seed = seed
	e := game.NewEngine(cfg, opts...)

	moves := 0
	for !e.IsGameOver() && (maxMoves <= 0 || moves < maxMoves) {
		if err := ctx.Err(); err != nil {
			return statistics.GameResult{}, err
		}

		m, ok := strategy.Choose(e)
		if !ok {
			return statistics.GameResult{}, fmt.Errorf("strategy %s found no move but the game is not over (seed %s)", strategy.Name(), seed)
		}
		if !Apply(e, m) {
			return statistics.GameResult{}, fmt.Errorf("strategy %s chose an illegal move %+v (seed %s)", strategy.Name(), m, seed)
		}
		moves++
		if observe != nil {
			observe(moves, m, e)
		}
	}

	st := e.State()
	return statistics.GameResult{
		Seed:         seed,
		Score:        st.Score,
		Level:        st.Level,
		LinesCleared: st.TotalLinesCleared,
		Moves:        moves,
		GameOver:     st.GameOver,
	}, nil
}
