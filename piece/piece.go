package piece

import (
	"strconv"
	"sync/atomic"

	"github.com/lox/hexfall/hex"
)

// RNG returns uniformly distributed values in [0, 1).
type RNG func() float64

// Piece is a placeable instance drawn from the catalog.
type Piece struct {
	ID          string    `json:"id"`
	TypeID      string    `json:"typeId"`
	Cells       []hex.Hex `json:"cells"`
	Color       string    `json:"color"`
	Orientation int       `json:"orientation"`
}

// Clone returns a deep copy of p.
func (p Piece) Clone() Piece {
	p.Cells = cloneCells(p.Cells)
	return p
}

// Size returns the number of cells in the piece.
func (p Piece) Size() int {
	return len(p.Cells)
}

const maxDrawsPerPiece = 1000

var idSeq atomic.Uint64

// nextID hands out process-wide unique instance ids.
func nextID() string {
	return "piece-" + strconv.FormatUint(idSeq.Add(1), 10)
}

// GeneratePiece draws one piece. The first draw decides whether it is a
// Single (draw < singleHexRarity); otherwise a second draw picks a
// non-Single type and a third draw picks one of its orientations.
func GeneratePiece(rng RNG, singleHexRarity float64) Piece {
	c := defaultCatalog()

	if rng() < singleHexRarity {
		t := c.types[c.byID[SingleID]]
		return Piece{
			ID:          nextID(),
			TypeID:      t.ID,
			Cells:       cloneCells(c.orientations[t.ID][0]),
			Color:       t.Color,
			Orientation: 0,
		}
	}

	t := c.types[c.tetrominoes[pick(rng, len(c.tetrominoes))]]
	orientations := c.orientations[t.ID]
	idx := pick(rng, len(orientations))
	return Piece{
		ID:          nextID(),
		TypeID:      t.ID,
		Cells:       cloneCells(orientations[idx]),
		Color:       t.Color,
		Orientation: idx,
	}
}

// GeneratePieceSet draws count pieces, rejecting any draw whose type and
// orientation were already used in this set. Singles may repeat.
func GeneratePieceSet(count int, rng RNG, singleHexRarity float64) []Piece {
	if count <= 0 {
		return []Piece{}
	}

	type shapeID struct {
		typeID      string
		orientation int
	}
	used := make(map[shapeID]bool, count)
	pieces := make([]Piece, 0, count)

	// A degenerate rng, or a count larger than the number of distinct
	// shapes, would otherwise never terminate.
	budget := count * maxDrawsPerPiece

	for len(pieces) < count {
		p := GeneratePiece(rng, singleHexRarity)
		key := shapeID{p.TypeID, p.Orientation}
		if p.TypeID != SingleID && used[key] && budget > 0 {
			budget--
			continue
		}
		used[key] = true
		pieces = append(pieces, p)
	}
	return pieces
}

// Rotate returns p advanced to its next orientation, wrapping to zero.
// The input is left untouched. Pieces of unknown type are returned as-is.
func Rotate(p Piece) Piece {
	orientations := defaultCatalog().orientations[p.TypeID]
	if len(orientations) == 0 {
		return p.Clone()
	}
	next := (p.Orientation + 1) % len(orientations)
	if next < 0 {
		next = 0
	}
	p.Orientation = next
	p.Cells = cloneCells(orientations[next])
	return p
}

// pick maps one draw onto [0, n).
func pick(rng RNG, n int) int {
	i := int(rng() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
