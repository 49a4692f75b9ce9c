package hex

import (
	"slices"
	"strings"
)

// CellCount returns the number of hexes in a hexagon with the given edge
// length: 3e² - 3e + 1.
func CellCount(edgeLength int) int {
	if edgeLength < 1 {
		return 0
	}
	return 3*edgeLength*edgeLength - 3*edgeLength + 1
}

// GenerateHexGrid returns every hex within distance edgeLength-1 of the
// origin, ordered by q then r.
func GenerateHexGrid(edgeLength int) []Hex {
	if edgeLength < 1 {
		return nil
	}

	n := edgeLength - 1
	coords := make([]Hex, 0, CellCount(edgeLength))
	for q := -n; q <= n; q++ {
		r1 := max(-n, -q-n)
		r2 := min(n, -q+n)
		for r := r1; r <= r2; r++ {
			coords = append(coords, Hex{Q: q, R: r})
		}
	}
	return coords
}

// NormalizeShape translates cells so that the minimum q and the minimum r
// (taken independently) are both zero. The input is not modified.
func NormalizeShape(cells []Hex) []Hex {
	if len(cells) == 0 {
		return []Hex{}
	}

	minQ, minR := cells[0].Q, cells[0].R
	for _, c := range cells[1:] {
		minQ = min(minQ, c.Q)
		minR = min(minR, c.R)
	}

	out := make([]Hex, len(cells))
	for i, c := range cells {
		out[i] = Hex{Q: c.Q - minQ, R: c.R - minR}
	}
	return out
}

// ShapeKey returns an order-independent identity for a shape: the
// normalized cells sorted by (q, r) and joined with "|".
func ShapeKey(cells []Hex) string {
	norm := NormalizeShape(cells)
	slices.SortFunc(norm, compare)

	keys := make([]string, len(norm))
	for i, c := range norm {
		keys[i] = c.Key()
	}
	return strings.Join(keys, "|")
}

// ShapesEqual reports whether two shapes are identical up to translation.
func ShapesEqual(a, b []Hex) bool {
	return ShapeKey(a) == ShapeKey(b)
}

// SortedKey returns the cells' keys sorted lexically and joined with "|".
// Unlike ShapeKey it does not translate, so it identifies absolute
// positions.
func SortedKey(cells []Hex) string {
	keys := make([]string, len(cells))
	for i, c := range cells {
		keys[i] = c.Key()
	}
	slices.Sort(keys)
	return strings.Join(keys, "|")
}

func compare(a, b Hex) int {
	if a.Q != b.Q {
		return a.Q - b.Q
	}
	return a.R - b.R
}
