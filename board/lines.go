package board

import "github.com/lox/hexfall/hex"

// LineDirections are the three axial directions a line can run in: constant
// r, constant q, and constant s.
var LineDirections = [3]hex.Hex{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
}

// MinLineLength is the shortest run that counts as a completed line. It is
// the edge length in every direction, even though the distance across the
// hexagon is longer through the middle rows.
func (b *Board) MinLineLength() int {
	return b.edgeLength
}

// DetectCompletedLines returns every maximal run of filled cells, along any
// of LineDirections, that is at least MinLineLength long. Each line is
// ordered from its start to its end and reported once, however many of its
// cells it was discovered from.
func (b *Board) DetectCompletedLines() [][]hex.Hex {
	var lines [][]hex.Hex
	seen := make(map[string]bool)

	for i := range b.cells {
		if !b.cells[i].Filled {
			continue
		}
		start := b.cells[i].Coord
		for _, dir := range LineDirections {
			run := b.runThrough(start, dir)
			if len(run) < b.MinLineLength() {
				continue
			}
			key := hex.SortedKey(run)
			if seen[key] {
				continue
			}
			seen[key] = true
			lines = append(lines, run)
		}
	}
	return lines
}

// runThrough walks backwards from start to the first filled cell of the
// contiguous run, then forwards to its last. The result cannot be extended
// at either end: the neighbour beyond each end is off the board or empty.
func (b *Board) runThrough(start, dir hex.Hex) []hex.Hex {
	back := hex.Scale(dir, -1)

	first := start
	for prev := hex.Add(first, back); b.isFilled(prev); prev = hex.Add(prev, back) {
		first = prev
	}

	var run []hex.Hex
	for cur := first; b.isFilled(cur); cur = hex.Add(cur, dir) {
		run = append(run, cur)
	}
	return run
}

// ClearLines empties every filled cell named in lines and returns how many
// cells were emptied. Cells shared by several lines count once.
func (b *Board) ClearLines(lines [][]hex.Hex) int {
	cleared := 0
	for _, line := range lines {
		for _, coord := range line {
			i, ok := b.slot(coord)
			if !ok || !b.cells[i].Filled {
				continue
			}
			b.cells[i].empty()
			cleared++
		}
	}
	return cleared
}
