package board

import (
	"testing"

	"github.com/lox/hexfall/hex"
	"github.com/lox/hexfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPiece(id string, cells ...hex.Hex) piece.Piece {
	return piece.Piece{ID: id, TypeID: "test", Cells: cells, Color: "#123456"}
}

var (
	bar3   = testPiece("bar3", hex.Hex{Q: 0, R: 0}, hex.Hex{Q: 1, R: 0}, hex.Hex{Q: 2, R: 0})
	single = testPiece("single", hex.Hex{Q: 0, R: 0})
	line4  = testPiece("line4", hex.Hex{Q: 0, R: 0}, hex.Hex{Q: 1, R: 0}, hex.Hex{Q: 2, R: 0}, hex.Hex{Q: 3, R: 0})
)

// fill marks coords filled, failing the test on any off-board coordinate.
func fill(t *testing.T, b *Board, coords ...hex.Hex) {
	t.Helper()
	for _, c := range coords {
		require.True(t, b.SetCell(c, Cell{Filled: true, Color: "#fff", PieceID: "fill"}), "coord %v", c)
	}
}

func row(r, fromQ, toQ int) []hex.Hex {
	var out []hex.Hex
	for q := fromQ; q <= toQ; q++ {
		out = append(out, hex.Hex{Q: q, R: r})
	}
	return out
}

func TestNew(t *testing.T) {
	b := New(DefaultEdgeLength)
	assert.Equal(t, 61, b.TotalCellCount())
	assert.Equal(t, 0, b.FilledCellCount())
	assert.Equal(t, 5, b.EdgeLength())

	for _, c := range b.Cells() {
		assert.False(t, c.Filled)
		assert.Empty(t, c.Color)
		assert.Empty(t, c.PieceID)
		assert.LessOrEqual(t, hex.Distance(hex.Origin, c.Coord), 4)
	}

	assert.Equal(t, 1, New(1).TotalCellCount())
	assert.Equal(t, 0, New(0).TotalCellCount())
}

func TestCoordinateQueries(t *testing.T) {
	b := New(5)

	assert.True(t, b.IsValidCoord(hex.Hex{Q: 4, R: -4}))
	assert.True(t, b.IsValidCoord(hex.Hex{Q: -4, R: 0}))
	assert.False(t, b.IsValidCoord(hex.Hex{Q: 5, R: 0}))
	assert.False(t, b.IsValidCoord(hex.Hex{Q: 3, R: 3}))

	cell, ok := b.Cell(hex.Hex{Q: 1, R: 2})
	require.True(t, ok)
	assert.Equal(t, hex.Hex{Q: 1, R: 2}, cell.Coord)

	_, ok = b.Cell(hex.Hex{Q: 100, R: 100})
	assert.False(t, ok)

	assert.True(t, b.IsCellEmpty(hex.Origin))
	assert.False(t, b.IsCellEmpty(hex.Hex{Q: 100, R: 100}), "off-board is not empty")

	// keys with negative r must not collide with other coordinates
	assert.False(t, b.IsValidCoord(hex.Hex{Q: -1, R: -4}))
	assert.True(t, b.IsValidCoord(hex.Hex{Q: 0, R: -4}))
}

func TestCanPlace(t *testing.T) {
	b := New(5)

	assert.True(t, b.CanPlace(bar3, hex.Origin))
	require.True(t, b.Place(bar3, hex.Origin))

	assert.False(t, b.CanPlace(bar3, hex.Origin), "self overlap")
	assert.True(t, b.CanPlace(bar3, hex.Hex{Q: 0, R: 1}))

	t.Run("off board", func(t *testing.T) {
		assert.False(t, b.CanPlace(bar3, hex.Hex{Q: 3, R: 0}), "runs off the east edge")
		assert.False(t, b.CanPlace(single, hex.Hex{Q: 100, R: 100}))
	})

	t.Run("empty piece", func(t *testing.T) {
		empty := testPiece("empty")
		assert.True(t, b.CanPlace(empty, hex.Hex{Q: 100, R: 100}))
	})
}

func TestPlace(t *testing.T) {
	b := New(5)
	require.True(t, b.Place(bar3, hex.Hex{Q: -1, R: 2}))
	assert.Equal(t, 3, b.FilledCellCount())

	for _, off := range bar3.Cells {
		c, ok := b.Cell(hex.Add(off, hex.Hex{Q: -1, R: 2}))
		require.True(t, ok)
		assert.True(t, c.Filled)
		assert.Equal(t, "#123456", c.Color)
		assert.Equal(t, "bar3", c.PieceID)
	}

	t.Run("overlap leaves board unchanged", func(t *testing.T) {
		before := b.Cells()
		assert.False(t, b.Place(line4, hex.Hex{Q: -2, R: 2}))
		assert.Equal(t, before, b.Cells())
	})

	t.Run("partially off board leaves board unchanged", func(t *testing.T) {
		before := b.Cells()
		assert.False(t, b.Place(line4, hex.Hex{Q: 2, R: 0}))
		assert.Equal(t, before, b.Cells())
	})
}

func TestSetCell(t *testing.T) {
	b := New(3)

	assert.True(t, b.SetCell(hex.Origin, Cell{Filled: true, Color: "red", PieceID: "p"}))
	c, _ := b.Cell(hex.Origin)
	assert.Equal(t, Cell{Coord: hex.Origin, Filled: true, Color: "red", PieceID: "p"}, c)

	// an unfilled cell never keeps color or piece id
	assert.True(t, b.SetCell(hex.Origin, Cell{Filled: false, Color: "red", PieceID: "p"}))
	c, _ = b.Cell(hex.Origin)
	assert.Equal(t, Cell{Coord: hex.Origin}, c)

	// the coordinate cannot be rewritten
	assert.True(t, b.SetCell(hex.Origin, Cell{Coord: hex.Hex{Q: 9, R: 9}, Filled: true}))
	c, _ = b.Cell(hex.Origin)
	assert.Equal(t, hex.Origin, c.Coord)

	assert.False(t, b.SetCell(hex.Hex{Q: 5, R: 5}, Cell{Filled: true}))
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(5)
	require.True(t, b.Place(bar3, hex.Origin))

	clone := b.Clone()
	assert.Equal(t, b.Cells(), clone.Cells())

	require.True(t, clone.Place(single, hex.Hex{Q: 0, R: 2}))
	clone.ClearLines([][]hex.Hex{{hex.Origin}})

	assert.Equal(t, 3, b.FilledCellCount())
	assert.True(t, b.IsCellEmpty(hex.Hex{Q: 0, R: 2}))
	assert.False(t, b.IsCellEmpty(hex.Origin))
	assert.Equal(t, 3, clone.FilledCellCount())
}

func TestClear(t *testing.T) {
	b := New(5)
	fill(t, b, row(0, -4, 4)...)
	b.Clear()
	assert.Equal(t, 0, b.FilledCellCount())
	for _, c := range b.Cells() {
		assert.Empty(t, c.Color)
		assert.Empty(t, c.PieceID)
	}
}

func TestAnyPieceFits(t *testing.T) {
	b := New(5)
	assert.True(t, b.AnyPieceFits([]piece.Piece{line4}))
	assert.False(t, b.AnyPieceFits(nil))

	for _, c := range b.Cells() {
		if c.Coord != hex.Origin {
			fill(t, b, c.Coord)
		}
	}

	assert.False(t, b.AnyPieceFits([]piece.Piece{line4, bar3}))
	assert.True(t, b.AnyPieceFits([]piece.Piece{line4, single}))
}

func TestValidPlacements(t *testing.T) {
	b := New(5)
	assert.Len(t, b.ValidPlacements(single), 61)

	// a horizontal 4-line fits (row length - 3) times in every row
	assert.Len(t, b.ValidPlacements(line4), 34)

	for _, origin := range b.ValidPlacements(line4) {
		assert.True(t, b.CanPlace(line4, origin))
	}

	b.Place(single, hex.Origin)
	placements := b.ValidPlacements(single)
	assert.Len(t, placements, 60)
	assert.NotContains(t, placements, hex.Origin)
}
