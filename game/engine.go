package game

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/hexfall/board"
	"github.com/lox/hexfall/hex"
	"github.com/lox/hexfall/internal/randutil"
	"github.com/lox/hexfall/piece"
	"github.com/lox/hexfall/scoring"
)

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for state transition messages.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRNG replaces the seeded random source. The seed in Config is then
// only recorded, not used.
func WithRNG(rng piece.RNG) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// Engine runs one game: it owns the board, the scoring system and the tray
// of pieces the player may place next. It is not safe for concurrent use.
type Engine struct {
	config     Config
	board      *board.Board
	scoring    *scoring.System
	tray       []piece.Piece
	rng        piece.RNG
	gameOver   bool
	lastUpdate *scoring.Update
	logger     *log.Logger
}

// NewEngine creates a game and deals the first tray. Unusable config values
// are replaced by their defaults. If nothing in the first tray fits the
// engine starts in the game over state.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	cfg, fixed := cfg.sanitized()
	if len(fixed) > 0 {
		e.logger.Warn("Replaced invalid config values with defaults", "fields", fixed)
	}
	e.config = cfg

	if e.rng == nil {
		e.rng = seededRNG(cfg.Seed)
	}

	e.board = board.New(cfg.EdgeLength)
	e.scoring = scoring.New(cfg.PointsPerLine)
	e.dealTray()

	e.logger.Debug("Game started",
		"edgeLength", cfg.EdgeLength,
		"piecesPerSet", cfg.PiecesPerSet,
		"seed", cfg.Seed,
		"gameOver", e.gameOver)

	return e
}

func seededRNG(seed string) piece.RNG {
	if seed == "" {
		return randutil.Unseeded()
	}
	return randutil.FromString(seed).Float64
}

// dealTray replaces the tray with a fresh set and re-checks for game over.
func (e *Engine) dealTray() {
	e.tray = piece.GeneratePieceSet(e.config.PiecesPerSet, e.rng, e.config.SingleHexRarity)
	e.checkGameOver()
}

func (e *Engine) checkGameOver() {
	if e.board.AnyPieceFits(e.tray) {
		return
	}
	if !e.gameOver {
		e.logger.Debug("Game over",
			"score", e.scoring.Score(),
			"filled", e.board.FilledCellCount())
	}
	e.gameOver = true
}

func (e *Engine) trayIndex(id string) int {
	return slices.IndexFunc(e.tray, func(p piece.Piece) bool { return p.ID == id })
}

// PlacePiece places the tray piece with p's id at position. It returns false
// without changing anything if the game is over, the piece is not in the
// tray, or it does not fit. On success completed lines are cleared, the
// tray is topped back up and game over is re-evaluated.
func (e *Engine) PlacePiece(p piece.Piece, position hex.Hex) bool {
	if e.gameOver {
		return false
	}

	idx := e.trayIndex(p.ID)
	if idx < 0 {
		e.logger.Debug("Piece not in tray", "piece", p.ID)
		return false
	}

	placed := e.tray[idx]
	if !e.board.Place(placed, position) {
		return false
	}

	e.tray = slices.Delete(e.tray, idx, idx+1)
	points := e.scoring.AddPlacementScore(placed.Size())

	e.logger.Debug("Placed piece",
		"piece", placed.ID,
		"type", placed.TypeID,
		"orientation", placed.Orientation,
		"position", position,
		"points", points)

	if lines := e.board.DetectCompletedLines(); len(lines) > 0 {
		cleared := e.board.ClearLines(lines)
		update := e.scoring.ProcessLineClear(len(lines))
		e.lastUpdate = &update

		e.logger.Debug("Cleared lines",
			"lines", len(lines),
			"cells", cleared,
			"score", update.Points,
			"level", update.Level)
	}

	if missing := e.config.PiecesPerSet - len(e.tray); missing > 0 {
		e.tray = append(e.tray, piece.GeneratePieceSet(missing, e.rng, e.config.SingleHexRarity)...)
	}

	e.checkGameOver()
	return true
}

// RotatePiece advances the tray piece with the given id to its next
// orientation and returns it.
func (e *Engine) RotatePiece(id string) (piece.Piece, bool) {
	idx := e.trayIndex(id)
	if idx < 0 {
		return piece.Piece{}, false
	}
	rotated := piece.Rotate(e.tray[idx])
	e.tray[idx] = rotated
	return rotated.Clone(), true
}

// CanPlacePiece reports whether p fits at position on the current board.
func (e *Engine) CanPlacePiece(p piece.Piece, position hex.Hex) bool {
	return e.board.CanPlace(p, position)
}

// ValidPlacements returns every origin at which p fits.
func (e *Engine) ValidPlacements(p piece.Piece) []hex.Hex {
	return e.board.ValidPlacements(p)
}

// Reset starts a new game with the current random source.
func (e *Engine) Reset() {
	e.board.Clear()
	e.scoring.Reset()
	e.gameOver = false
	e.lastUpdate = nil
	e.dealTray()

	e.logger.Debug("Game reset", "seed", e.config.Seed)
}

// ResetWithSeed reseeds the random source and starts a new game. An empty
// seed switches to non-reproducible randomness.
func (e *Engine) ResetWithSeed(seed string) {
	e.config.Seed = seed
	e.rng = seededRNG(seed)
	e.Reset()
}

// IsGameOver reports whether placements are still accepted.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Board returns the live board for read access. Callers must not mutate
// it; use State for a copy.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Tray returns a copy of the pieces currently available.
func (e *Engine) Tray() []piece.Piece {
	return cloneTray(e.tray)
}

// Config returns the settings in effect.
func (e *Engine) Config() Config {
	return e.config
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.scoring.Score()
}

// SetBoardState overwrites cells by "q,r" key. Unknown or malformed keys
// are ignored. Game over is recomputed against the current tray. Intended
// for tests.
func (e *Engine) SetBoardState(cells map[string]board.Cell) {
	for key, c := range cells {
		coord, err := hex.FromKey(key)
		if err != nil {
			continue
		}
		e.board.SetCell(coord, c)
	}
	e.gameOver = !e.board.AnyPieceFits(e.tray)
}

// SetTray replaces the tray and recomputes game over. Intended for tests.
func (e *Engine) SetTray(pieces []piece.Piece) {
	e.tray = cloneTray(pieces)
	e.gameOver = !e.board.AnyPieceFits(e.tray)
}

func cloneTray(tray []piece.Piece) []piece.Piece {
	out := make([]piece.Piece, len(tray))
	for i, p := range tray {
		out[i] = p.Clone()
	}
	return out
}
