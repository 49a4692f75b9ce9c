// Package piece holds the fixed catalog of hex piece shapes, their
// precomputed orientations, and seeded piece generation.
//
// All randomness is supplied by the caller as a func() float64 returning
// values in [0, 1). Nothing in this package consults a global entropy
// source, so a fixed seed reproduces the same sequence of pieces.
package piece

import (
	"sync"

	"github.com/lox/hexfall/hex"
)

// SingleID is the type id of the one-cell piece.
const SingleID = "Single"

// DefaultSingleHexRarity is the probability of drawing a Single piece.
const DefaultSingleHexRarity = 0.05

// Type is a catalog entry.
type Type struct {
	ID     string
	Name   string
	Cells  []hex.Hex // normalized canonical shape
	Color  string
	Rarity float64 // draw probability, only meaningful for Single
}

type catalog struct {
	types        []Type
	byID         map[string]int
	orientations map[string][][]hex.Hex
	tetrominoes  []int // indexes of non-Single types
}

var (
	catalogOnce sync.Once
	shared      *catalog
)

func defaultCatalog() *catalog {
	catalogOnce.Do(func() {
		shared = buildCatalog([]Type{
			{ID: "I4", Name: "Line", Color: "#00bcd4", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 3, R: 0}}},
			{ID: "Z4", Name: "Zigzag", Color: "#f44336", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 1, R: 1}, {Q: 2, R: 1}}},
			{ID: "L4", Name: "L-Shape", Color: "#ff9800", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 2, R: 1}}},
			{ID: "T4", Name: "T-Shape", Color: "#9c27b0", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 1, R: 1}}},
			{ID: "Y4", Name: "Y-Shape", Color: "#4caf50", Cells: []hex.Hex{{Q: 1, R: 0}, {Q: 0, R: 1}, {Q: 1, R: 1}, {Q: 2, R: 0}}},
			{ID: "O4", Name: "Diamond", Color: "#ffeb3b", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 1}, {Q: 1, R: -1}}},
			{ID: "W4", Name: "Wide", Color: "#2196f3", Cells: []hex.Hex{{Q: 0, R: 0}, {Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 2, R: -1}}},
			{ID: SingleID, Name: "Single", Color: "#9e9e9e", Cells: []hex.Hex{{Q: 0, R: 0}}, Rarity: DefaultSingleHexRarity},
		})
	})
	return shared
}

func buildCatalog(types []Type) *catalog {
	c := &catalog{
		types:        make([]Type, len(types)),
		byID:         make(map[string]int, len(types)),
		orientations: make(map[string][][]hex.Hex, len(types)),
	}
	for i, t := range types {
		t.Cells = hex.NormalizeShape(t.Cells)
		c.types[i] = t
		c.byID[t.ID] = i
		c.orientations[t.ID] = GenerateOrientations(t.Cells)
		if t.ID != SingleID {
			c.tetrominoes = append(c.tetrominoes, i)
		}
	}
	return c
}

// Types returns a copy of the catalog in declaration order.
func Types() []Type {
	c := defaultCatalog()
	out := make([]Type, len(c.types))
	for i, t := range c.types {
		t.Cells = cloneCells(t.Cells)
		out[i] = t
	}
	return out
}

// TypeByID looks up a catalog entry.
func TypeByID(id string) (Type, bool) {
	c := defaultCatalog()
	i, ok := c.byID[id]
	if !ok {
		return Type{}, false
	}
	t := c.types[i]
	t.Cells = cloneCells(t.Cells)
	return t, true
}

// Orientations returns a copy of the orientation set for a type id, or nil
// if the id is unknown.
func Orientations(typeID string) [][]hex.Hex {
	set, ok := defaultCatalog().orientations[typeID]
	if !ok {
		return nil
	}
	out := make([][]hex.Hex, len(set))
	for i, cells := range set {
		out[i] = cloneCells(cells)
	}
	return out
}

// OrientationCount returns the size of the orientation set for typeID.
func OrientationCount(typeID string) int {
	return len(defaultCatalog().orientations[typeID])
}

// GenerateOrientations returns the distinct normalized shapes reachable by
// the six rotations of shape, each followed by its mirror image. Order is
// first-seen and is stable, so callers may index into it.
func GenerateOrientations(shape []hex.Hex) [][]hex.Hex {
	var out [][]hex.Hex
	seen := make(map[string]bool, 12)

	add := func(cells []hex.Hex) {
		key := hex.ShapeKey(cells)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, cells)
	}

	for rot := range 6 {
		rotated := make([]hex.Hex, len(shape))
		for i, h := range shape {
			rotated[i] = hex.Rotate(h, rot)
		}
		rotated = hex.NormalizeShape(rotated)
		add(rotated)

		mirrored := make([]hex.Hex, len(rotated))
		for i, h := range rotated {
			mirrored[i] = hex.Mirror(h)
		}
		add(hex.NormalizeShape(mirrored))
	}
	return out
}

func cloneCells(cells []hex.Hex) []hex.Hex {
	if cells == nil {
		return nil
	}
	out := make([]hex.Hex, len(cells))
	copy(out, cells)
	return out
}
