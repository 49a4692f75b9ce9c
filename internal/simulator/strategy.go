package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/hexfall/game"
	"github.com/lox/hexfall/hex"
	"github.com/lox/hexfall/piece"
)

// Move names a tray piece, the orientation it should be turned to, and the
// origin to place it at.
type Move struct {
	PieceID     string  `json:"pieceId"`
	TypeID      string  `json:"typeId"`
	Orientation int     `json:"orientation"`
	Origin      hex.Hex `json:"origin"`
}

// Strategy picks the next move for a game in progress. Implementations may
// keep per-game state and are never shared between goroutines.
type Strategy interface {
	Name() string
	// Choose returns false when no tray piece fits anywhere.
	Choose(e *game.Engine) (Move, bool)
}

// Strategy names accepted by NewStrategy.
const (
	StrategyFirst  = "first"
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

// StrategyNames lists the built-in strategies.
func StrategyNames() []string {
	return []string{StrategyFirst, StrategyGreedy, StrategyRandom}
}

// NewStrategy creates a built-in strategy. rng is only consulted by the
// random strategy.
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case StrategyFirst:
		return firstFit{}, nil
	case StrategyGreedy:
		return greedy{}, nil
	case StrategyRandom:
		if rng == nil {
			return nil, fmt.Errorf("random strategy needs a random source")
		}
		return &randomMoves{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, StrategyNames())
	}
}

// Apply turns the tray piece to the move's orientation and places it.
func Apply(e *game.Engine, m Move) bool {
	tray := e.Tray()
	idx := slices.IndexFunc(tray, func(p piece.Piece) bool { return p.ID == m.PieceID })
	if idx < 0 {
		return false
	}
	p := tray[idx]

	for range piece.OrientationCount(p.TypeID) {
		if p.Orientation == m.Orientation {
			break
		}
		rotated, ok := e.RotatePiece(p.ID)
		if !ok {
			return false
		}
		p = rotated
	}
	if p.Orientation != m.Orientation {
		return false
	}
	return e.PlacePiece(p, m.Origin)
}

// firstFit takes the first tray piece that fits, as it is currently turned,
// at its first valid origin.
type firstFit struct{}

func (firstFit) Name() string { return StrategyFirst }

func (firstFit) Choose(e *game.Engine) (Move, bool) {
	for _, p := range e.Tray() {
		if origins := e.ValidPlacements(p); len(origins) > 0 {
			return Move{PieceID: p.ID, TypeID: p.TypeID, Orientation: p.Orientation, Origin: origins[0]}, true
		}
	}
	return Move{}, false
}

// candidate is one legal move together with the piece turned to its
// orientation.
type candidate struct {
	move  Move
	piece piece.Piece
}

// candidates enumerates every legal move over all tray pieces and all of
// their orientations, in tray, orientation and origin order.
func candidates(e *game.Engine) []candidate {
	var out []candidate
	add := func(turned piece.Piece) {
		for _, origin := range e.ValidPlacements(turned) {
			out = append(out, candidate{
				move:  Move{PieceID: turned.ID, TypeID: turned.TypeID, Orientation: turned.Orientation, Origin: origin},
				piece: turned,
			})
		}
	}

	for _, p := range e.Tray() {
		orientations := piece.Orientations(p.TypeID)
		if len(orientations) == 0 {
			// not in the catalog, so it cannot be rotated
			add(p)
			continue
		}
		for o, cells := range orientations {
			turned := p
			turned.Cells = cells
			turned.Orientation = o
			add(turned)
		}
	}
	return out
}

// greedy picks the move that clears the most lines right away, then the
// one that clears the most cells, then the largest piece. Ties go to the
// earliest candidate.
type greedy struct{}

func (greedy) Name() string { return StrategyGreedy }

func (greedy) Choose(e *game.Engine) (Move, bool) {
	var (
		best      Move
		found     bool
		bestLines = -1
		bestCells = -1
		bestSize  = -1
	)

	for _, c := range candidates(e) {
		b := e.Board().Clone()
		b.Place(c.piece, c.move.Origin)
		lines := b.DetectCompletedLines()
		cells := b.ClearLines(lines)
		size := c.piece.Size()

		better := len(lines) > bestLines ||
			(len(lines) == bestLines && cells > bestCells) ||
			(len(lines) == bestLines && cells == bestCells && size > bestSize)
		if better {
			best, found = c.move, true
			bestLines, bestCells, bestSize = len(lines), cells, size
		}
	}
	return best, found
}

// randomMoves picks uniformly among every legal move.
type randomMoves struct {
	rng *rand.Rand
}

func (*randomMoves) Name() string { return StrategyRandom }

func (r *randomMoves) Choose(e *game.Engine) (Move, bool) {
	all := candidates(e)
	if len(all) == 0 {
		return Move{}, false
	}
	return all[r.rng.IntN(len(all))].move, true
}
