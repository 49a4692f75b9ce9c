package piece

import (
	"fmt"
	rand "math/rand/v2"
	"testing"

	"github.com/lox/hexfall/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns an RNG that replays values in order, cycling.
func sequence(values ...float64) RNG {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestCatalog(t *testing.T) {
	types := Types()
	require.Len(t, types, 8)

	ids := make([]string, len(types))
	for i, ty := range types {
		ids[i] = ty.ID
		assert.Equal(t, ty.Cells, hex.NormalizeShape(ty.Cells), "%s must be stored normalized", ty.ID)
		assert.NotEmpty(t, ty.Color)
		assert.NotEmpty(t, ty.Name)
	}
	assert.Equal(t, []string{"I4", "Z4", "L4", "T4", "Y4", "O4", "W4", "Single"}, ids)

	single, ok := TypeByID(SingleID)
	require.True(t, ok)
	assert.Len(t, single.Cells, 1)
	assert.Equal(t, DefaultSingleHexRarity, single.Rarity)

	for _, ty := range types[:7] {
		assert.Len(t, ty.Cells, 4, ty.ID)
		assert.Zero(t, ty.Rarity, ty.ID)
	}

	_, ok = TypeByID("nope")
	assert.False(t, ok)
}

func TestCatalogIsReadOnly(t *testing.T) {
	ty, _ := TypeByID("I4")
	ty.Cells[0] = hex.Hex{Q: 99, R: 99}

	again, _ := TypeByID("I4")
	assert.Equal(t, hex.Hex{Q: 0, R: 0}, again.Cells[0])

	o := Orientations("I4")
	o[0][0] = hex.Hex{Q: 42, R: 42}
	assert.Equal(t, hex.Hex{Q: 0, R: 0}, Orientations("I4")[0][0])
}

func TestGenerateOrientations(t *testing.T) {
	want := map[string]int{
		"I4": 3, "Z4": 6, "L4": 12, "T4": 12,
		"Y4": 3, "O4": 3, "W4": 3, SingleID: 1,
	}
	for id, n := range want {
		t.Run(id, func(t *testing.T) {
			set := Orientations(id)
			require.Len(t, set, n)
			assert.Equal(t, n, OrientationCount(id))

			ty, _ := TypeByID(id)
			assert.True(t, hex.ShapesEqual(ty.Cells, set[0]), "orientation 0 is the canonical shape")

			seen := map[string]bool{}
			for _, cells := range set {
				assert.Equal(t, cells, hex.NormalizeShape(cells))
				key := hex.ShapeKey(cells)
				assert.False(t, seen[key], "duplicate orientation %s", key)
				seen[key] = true
			}
		})
	}

	t.Run("line orientations", func(t *testing.T) {
		set := Orientations("I4")
		assert.Equal(t, []hex.Hex{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, set[0])
		assert.Equal(t, []hex.Hex{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, set[1])
		assert.Equal(t, []hex.Hex{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, set[2])
	})

	assert.Nil(t, Orientations("nope"))
}

func TestGeneratePiece(t *testing.T) {
	t.Run("single below rarity", func(t *testing.T) {
		p := GeneratePiece(sequence(0.01), 0.05)
		assert.Equal(t, SingleID, p.TypeID)
		assert.Equal(t, []hex.Hex{{0, 0}}, p.Cells)
		assert.Equal(t, 0, p.Orientation)
		assert.Equal(t, "#9e9e9e", p.Color)
	})

	t.Run("tetromino picks type then orientation", func(t *testing.T) {
		p := GeneratePiece(sequence(0.5, 0.0, 0.0), 0.05)
		assert.Equal(t, "I4", p.TypeID)
		assert.Equal(t, 0, p.Orientation)

		p = GeneratePiece(sequence(0.9, 0.99, 0.99), 0.05)
		assert.Equal(t, "W4", p.TypeID)
		assert.Equal(t, 2, p.Orientation)
		assert.Equal(t, Orientations("W4")[2], p.Cells)
	})

	t.Run("zero rarity never yields single", func(t *testing.T) {
		p := GeneratePiece(sequence(0.0, 0.3, 0.3), 0)
		assert.NotEqual(t, SingleID, p.TypeID)
	})

	t.Run("ids are unique", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		seen := map[string]bool{}
		for range 500 {
			p := GeneratePiece(rng.Float64, 0.05)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})
}

func TestGeneratePieceSet(t *testing.T) {
	t.Run("rejects repeated shape", func(t *testing.T) {
		rng := sequence(
			0.5, 0.0, 0.0, // I4 / 0
			0.5, 0.0, 0.0, // I4 / 0 again, rejected
			0.5, 0.2, 0.5, // Z4 / 3
		)
		set := GeneratePieceSet(2, rng, 0.05)
		require.Len(t, set, 2)
		assert.Equal(t, "I4", set[0].TypeID)
		assert.Equal(t, 0, set[0].Orientation)
		assert.Equal(t, "Z4", set[1].TypeID)
		assert.Equal(t, 3, set[1].Orientation)
	})

	t.Run("singles may repeat", func(t *testing.T) {
		set := GeneratePieceSet(3, sequence(0.0), 0.05)
		require.Len(t, set, 3)
		for _, p := range set {
			assert.Equal(t, SingleID, p.TypeID)
		}
		assert.NotEqual(t, set[0].ID, set[1].ID)
	})

	t.Run("no duplicate non-single shapes", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 7))
		for range 200 {
			set := GeneratePieceSet(5, rng.Float64, 0.2)
			seen := map[string]bool{}
			for _, p := range set {
				if p.TypeID == SingleID {
					continue
				}
				key := fmt.Sprintf("%s/%d", p.TypeID, p.Orientation)
				assert.False(t, seen[key], "duplicate %s", key)
				seen[key] = true
			}
		}
	})

	t.Run("degenerate rng terminates", func(t *testing.T) {
		set := GeneratePieceSet(2, sequence(0.5, 0.0, 0.0), 0)
		assert.Len(t, set, 2)
	})

	t.Run("same draws give same set", func(t *testing.T) {
		a := GeneratePieceSet(3, rand.New(rand.NewPCG(3, 4)).Float64, 0.05)
		b := GeneratePieceSet(3, rand.New(rand.NewPCG(3, 4)).Float64, 0.05)
		for i := range a {
			assert.Equal(t, a[i].TypeID, b[i].TypeID)
			assert.Equal(t, a[i].Orientation, b[i].Orientation)
			assert.Equal(t, a[i].Cells, b[i].Cells)
		}
	})

	assert.Empty(t, GeneratePieceSet(0, sequence(0.5), 0))
}

func TestRotate(t *testing.T) {
	p := GeneratePiece(sequence(0.5, 0.0, 0.0), 0)
	require.Equal(t, "I4", p.TypeID)
	original := p.Clone()

	r := Rotate(p)
	assert.Equal(t, 1, r.Orientation)
	assert.Equal(t, Orientations("I4")[1], r.Cells)
	assert.Equal(t, p.ID, r.ID)
	assert.Equal(t, p.Color, r.Color)
	assert.Equal(t, original, p, "input must not change")

	r = Rotate(Rotate(r))
	assert.Equal(t, 0, r.Orientation, "wraps after the last orientation")
	assert.Equal(t, original.Cells, r.Cells)

	single := GeneratePiece(sequence(0.0), 0.05)
	assert.Equal(t, 0, Rotate(single).Orientation)

	unknown := Piece{ID: "x", TypeID: "??", Cells: []hex.Hex{{0, 0}}}
	assert.Equal(t, unknown, Rotate(unknown))
}
