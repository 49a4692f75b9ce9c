// Package board implements the hexagonal playing field: placement,
// occupancy queries and full-line detection and clearing.
//
// Cells are stored in a flat slice in grid order; a coordinate table maps
// each axial coordinate to its slot. The set of coordinates is fixed at
// construction, only occupancy changes afterwards.
package board

import (
	"github.com/kamstrup/intmap"

	"github.com/lox/hexfall/hex"
	"github.com/lox/hexfall/piece"
)

// DefaultEdgeLength is the number of cells along each edge of the default
// board, giving 61 cells.
const DefaultEdgeLength = 5

// Cell is one board position. Color and PieceID are set exactly when
// Filled is true.
type Cell struct {
	Coord   hex.Hex `json:"coord"`
	Filled  bool    `json:"filled"`
	Color   string  `json:"color,omitempty"`
	PieceID string  `json:"pieceId,omitempty"`
}

func (c *Cell) fill(color, pieceID string) {
	c.Filled = true
	c.Color = color
	c.PieceID = pieceID
}

func (c *Cell) empty() {
	c.Filled = false
	c.Color = ""
	c.PieceID = ""
}

// Board is a hexagon of cells with a fixed edge length. Not safe for
// concurrent use.
type Board struct {
	edgeLength int
	cells      []Cell
	index      *intmap.Map[int64, int] // shared between clones, never written after New
}

// New creates an empty board. Edge lengths below 1 produce an empty board
// on which nothing can be placed.
func New(edgeLength int) *Board {
	coords := hex.GenerateHexGrid(edgeLength)
	b := &Board{
		edgeLength: edgeLength,
		cells:      make([]Cell, len(coords)),
		index:      intmap.New[int64, int](len(coords)),
	}
	for i, c := range coords {
		b.cells[i] = Cell{Coord: c}
		b.index.Put(packKey(c), i)
	}
	return b
}

func packKey(h hex.Hex) int64 {
	return int64(h.Q)<<32 | int64(uint32(h.R))
}

func (b *Board) slot(coord hex.Hex) (int, bool) {
	return b.index.Get(packKey(coord))
}

// EdgeLength returns the number of cells along each edge.
func (b *Board) EdgeLength() int {
	return b.edgeLength
}

// Cell returns the cell at coord, or false if coord is off the board.
func (b *Board) Cell(coord hex.Hex) (Cell, bool) {
	i, ok := b.slot(coord)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Cells returns a copy of every cell in grid order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// IsValidCoord reports whether coord is one of the board's cells.
func (b *Board) IsValidCoord(coord hex.Hex) bool {
	_, ok := b.slot(coord)
	return ok
}

// IsCellEmpty reports whether coord is on the board and unfilled. Off-board
// coordinates report false.
func (b *Board) IsCellEmpty(coord hex.Hex) bool {
	i, ok := b.slot(coord)
	return ok && !b.cells[i].Filled
}

func (b *Board) isFilled(coord hex.Hex) bool {
	i, ok := b.slot(coord)
	return ok && b.cells[i].Filled
}

// CanPlace reports whether every cell of p, offset by origin, lands on an
// empty board cell. A piece without cells always fits.
func (b *Board) CanPlace(p piece.Piece, origin hex.Hex) bool {
	for _, c := range p.Cells {
		if !b.IsCellEmpty(hex.Add(c, origin)) {
			return false
		}
	}
	return true
}

// Place fills the cells covered by p at origin. It returns false and leaves
// the board untouched if the piece does not fit.
func (b *Board) Place(p piece.Piece, origin hex.Hex) bool {
	if !b.CanPlace(p, origin) {
		return false
	}
	for _, c := range p.Cells {
		i, _ := b.slot(hex.Add(c, origin))
		b.cells[i].fill(p.Color, p.ID)
	}
	return true
}

// SetCell overwrites the occupancy of coord. The coordinate itself cannot
// change. An unfilled cell always has its color and piece id cleared.
// Returns false if coord is off the board.
func (b *Board) SetCell(coord hex.Hex, c Cell) bool {
	i, ok := b.slot(coord)
	if !ok {
		return false
	}
	if c.Filled {
		b.cells[i].fill(c.Color, c.PieceID)
	} else {
		b.cells[i].empty()
	}
	return true
}

// FilledCellCount returns the number of occupied cells.
func (b *Board) FilledCellCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Filled {
			n++
		}
	}
	return n
}

// TotalCellCount returns the number of cells on the board.
func (b *Board) TotalCellCount() int {
	return len(b.cells)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		edgeLength: b.edgeLength,
		cells:      cells,
		index:      b.index,
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i].empty()
	}
}

// AnyPieceFits reports whether at least one of pieces can be placed with
// its origin on some currently empty cell.
func (b *Board) AnyPieceFits(pieces []piece.Piece) bool {
	for _, p := range pieces {
		for i := range b.cells {
			if !b.cells[i].Filled && b.CanPlace(p, b.cells[i].Coord) {
				return true
			}
		}
	}
	return false
}

// ValidPlacements returns every board coordinate that can serve as the
// origin of p, in grid order.
func (b *Board) ValidPlacements(p piece.Piece) []hex.Hex {
	var out []hex.Hex
	for i := range b.cells {
		if b.CanPlace(p, b.cells[i].Coord) {
			out = append(out, b.cells[i].Coord)
		}
	}
	return out
}
