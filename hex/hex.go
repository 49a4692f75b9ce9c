// Package hex implements axial hexagonal coordinate algebra.
//
// A Hex stores the axial pair (q, r). The third cube coordinate s = -q-r is
// always derived and never stored, so every Hex value is automatically a valid
// cube coordinate.
//
// # Basic Usage
//
//	a := hex.Hex{Q: 1, R: -1}
//	b := hex.Rotate(a, 2)      // two 60° clockwise steps
//	d := hex.Distance(a, b)    // hex distance
//	grid := hex.GenerateHexGrid(5)
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex is an axial hex coordinate.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the centre of every board.
var Origin = Hex{}

// Directions holds the six neighbour offsets, starting east and turning
// counter-clockwise.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// S returns the derived cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Key returns the canonical "q,r" string form of h.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

// String implements fmt.Stringer.
func (h Hex) String() string {
	return "(" + h.Key() + ")"
}

// Key returns the canonical "q,r" string form of h.
func Key(h Hex) string {
	return h.Key()
}

// FromKey parses a key produced by Key.
func FromKey(key string) (Hex, error) {
	qs, rs, ok := strings.Cut(key, ",")
	if !ok {
		return Hex{}, fmt.Errorf("invalid hex key %q: missing separator", key)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return Hex{}, fmt.Errorf("invalid hex key %q: %w", key, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Hex{}, fmt.Errorf("invalid hex key %q: %w", key, err)
	}
	return Hex{Q: q, R: r}, nil
}

// Equal reports whether a and b are the same coordinate.
func Equal(a, b Hex) bool {
	return a == b
}

// Add returns a+b.
func Add(a, b Hex) Hex {
	return Hex{Q: a.Q + b.Q, R: a.R + b.R}
}

// Subtract returns a-b.
func Subtract(a, b Hex) Hex {
	return Hex{Q: a.Q - b.Q, R: a.R - b.R}
}

// Scale multiplies both components by k.
func Scale(h Hex, k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Distance returns the number of steps between a and b.
func Distance(a, b Hex) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S()-b.S())) / 2
}

// Neighbor returns the adjacent hex in direction dir (0-5, wrapped).
func Neighbor(h Hex, dir int) Hex {
	return Add(h, Directions[mod6(dir)])
}

// Neighbors returns all six adjacent hexes in Directions order.
func Neighbors(h Hex) []Hex {
	out := make([]Hex, len(Directions))
	for i, d := range Directions {
		out[i] = Add(h, d)
	}
	return out
}

// RotateCW rotates h 60° clockwise about the origin.
func RotateCW(h Hex) Hex {
	return Hex{Q: -h.R, R: -h.S()}
}

// RotateCCW rotates h 60° counter-clockwise about the origin.
func RotateCCW(h Hex) Hex {
	return Hex{Q: -h.S(), R: -h.Q}
}

// Rotate rotates h by n 60° clockwise steps. Negative n rotates
// counter-clockwise.
func Rotate(h Hex, n int) Hex {
	for range mod6(n) {
		h = RotateCW(h)
	}
	return h
}

// Mirror reflects h across the q axis.
func Mirror(h Hex) Hex {
	return Hex{Q: h.Q, R: -h.Q - h.R}
}

// Line returns length hexes starting at start and stepping by dir.
func Line(start, dir Hex, length int) []Hex {
	if length <= 0 {
		return nil
	}
	line := make([]Hex, length)
	for i := range length {
		line[i] = Add(start, Scale(dir, i))
	}
	return line
}

func mod6(n int) int {
	return ((n % 6) + 6) % 6
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
