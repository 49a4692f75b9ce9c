// Package display renders boards, trays and game status as terminal text.
package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/hexfall/board"
	"github.com/lox/hexfall/game"
	"github.com/lox/hexfall/hex"
	"github.com/lox/hexfall/piece"
)

const (
	FilledGlyph = "⬢"
	EmptyGlyph  = "·"
)

// Styles contains styling for game display
type Styles struct {
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	GameOver lipgloss.Style
	Piece    lipgloss.Style // padding around each tray piece
}

// Renderer draws game state for one output
type Renderer struct {
	lg     *lipgloss.Renderer
	styles Styles
}

// New creates a renderer for w. With noColor set every style renders as
// plain text.
func New(w io.Writer, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		lg: lg,
		styles: Styles{
			Empty: lg.NewStyle().
				Foreground(lipgloss.Color("#626262")),
			Label: lg.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true),
			Value: lg.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")),
			GameOver: lg.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")).
				Bold(true),
			Piece: lg.NewStyle().
				PaddingRight(4),
		},
	}
}

type glyph struct {
	coord hex.Hex
	text  string
}

// layout places cells on a staggered grid: column 2q+r, one row per r.
// Columns are shifted so the leftmost cell starts at zero.
func layout(cells []glyph) string {
	if len(cells) == 0 {
		return ""
	}

	col := func(h hex.Hex) int { return 2*h.Q + h.R }
	minCol, minR, maxR := col(cells[0].coord), cells[0].coord.R, cells[0].coord.R
	for _, c := range cells[1:] {
		minCol = min(minCol, col(c.coord))
		minR = min(minR, c.coord.R)
		maxR = max(maxR, c.coord.R)
	}

	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, func(a, b glyph) int {
		if a.coord.R != b.coord.R {
			return a.coord.R - b.coord.R
		}
		return a.coord.Q - b.coord.Q
	})

	var sb strings.Builder
	i := 0
	for r := minR; r <= maxR; r++ {
		if r > minR {
			sb.WriteByte('\n')
		}
		cursor := 0
		for ; i < len(sorted) && sorted[i].coord.R == r; i++ {
			x := col(sorted[i].coord) - minCol
			sb.WriteString(strings.Repeat(" ", x-cursor))
			sb.WriteString(sorted[i].text)
			cursor = x + 1
		}
	}
	return sb.String()
}

func (r *Renderer) filled(color string) string {
	return r.lg.NewStyle().Foreground(lipgloss.Color(color)).Render(FilledGlyph)
}

// Board draws every cell of b, filled cells in their piece colour.
func (r *Renderer) Board(b *board.Board) string {
	cells := b.Cells()
	glyphs := make([]glyph, len(cells))
	for i, c := range cells {
		text := r.styles.Empty.Render(EmptyGlyph)
		if c.Filled {
			text = r.filled(c.Color)
		}
		glyphs[i] = glyph{coord: c.Coord, text: text}
	}
	return layout(glyphs)
}

// Shape draws a set of cells in one colour.
func (r *Renderer) Shape(cells []hex.Hex, color string) string {
	glyphs := make([]glyph, len(cells))
	for i, c := range cells {
		glyphs[i] = glyph{coord: c, text: r.filled(color)}
	}
	return layout(glyphs)
}

// Tray draws the pieces side by side, each under a caption with its type
// and orientation.
func (r *Renderer) Tray(pieces []piece.Piece) string {
	if len(pieces) == 0 {
		return ""
	}
	blocks := make([]string, len(pieces))
	for i, p := range pieces {
		caption := fmt.Sprintf("%d. %s %d/%d", i+1, p.TypeID, p.Orientation+1, max(piece.OrientationCount(p.TypeID), 1))
		blocks[i] = r.styles.Piece.Render(caption + "\n" + r.Shape(p.Cells, p.Color))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Status draws the score line.
func (r *Renderer) Status(st game.State) string {
	field := func(label string, v int) string {
		return r.styles.Label.Render(label) + " " + r.styles.Value.Render(fmt.Sprint(v))
	}
	parts := []string{
		field("Score", st.Score),
		field("Level", st.Level),
		field("Lines", st.TotalLinesCleared),
	}
	if st.GameOver {
		parts = append(parts, r.styles.GameOver.Render("GAME OVER"))
	}
	return strings.Join(parts, "  ")
}

// Game draws the status line, the board and the tray.
func (r *Renderer) Game(st game.State) string {
	return strings.Join([]string{r.Status(st), "", r.Board(st.Board), "", r.Tray(st.Tray)}, "\n")
}
