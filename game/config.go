package game

import (
	"fmt"

	"github.com/lox/hexfall/board"
	"github.com/lox/hexfall/piece"
	"github.com/lox/hexfall/scoring"
)

// DefaultPiecesPerSet is the number of pieces held in the tray.
const DefaultPiecesPerSet = 3

// Config holds the settings an engine is created with. Start from
// DefaultConfig and override fields; a zero SingleHexRarity is a valid
// setting and disables Single pieces.
type Config struct {
	EdgeLength      int     `json:"edgeLength"`
	SingleHexRarity float64 `json:"singleHexRarity"`
	PointsPerLine   int     `json:"pointsPerLine"`
	PiecesPerSet    int     `json:"piecesPerSet"`
	Seed            string  `json:"seed,omitempty"` // empty means non-reproducible
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		EdgeLength:      board.DefaultEdgeLength,
		SingleHexRarity: piece.DefaultSingleHexRarity,
		PointsPerLine:   scoring.DefaultPointsPerLine,
		PiecesPerSet:    DefaultPiecesPerSet,
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.EdgeLength < 1 {
		return fmt.Errorf("edge length must be positive, got %d", c.EdgeLength)
	}
	if c.SingleHexRarity < 0 || c.SingleHexRarity > 1 {
		return fmt.Errorf("single hex rarity must be within [0, 1], got %g", c.SingleHexRarity)
	}
	if c.PointsPerLine < 1 {
		return fmt.Errorf("points per line must be positive, got %d", c.PointsPerLine)
	}
	if c.PiecesPerSet < 1 {
		return fmt.Errorf("pieces per set must be positive, got %d", c.PiecesPerSet)
	}
	return nil
}

// sanitized replaces each unusable setting with its default and reports
// which fields were changed.
func (c Config) sanitized() (Config, []string) {
	def := DefaultConfig()
	var fixed []string
	if c.EdgeLength < 1 {
		c.EdgeLength = def.EdgeLength
		fixed = append(fixed, "edge_length")
	}
	if c.SingleHexRarity < 0 || c.SingleHexRarity > 1 {
		c.SingleHexRarity = def.SingleHexRarity
		fixed = append(fixed, "single_hex_rarity")
	}
	if c.PointsPerLine < 1 {
		c.PointsPerLine = def.PointsPerLine
		fixed = append(fixed, "points_per_line")
	}
	if c.PiecesPerSet < 1 {
		c.PiecesPerSet = def.PiecesPerSet
		fixed = append(fixed, "pieces_per_set")
	}
	return c, fixed
}
