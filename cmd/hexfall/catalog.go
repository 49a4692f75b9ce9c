package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hexfall/internal/display"
	"github.com/lox/hexfall/piece"
)

// CatalogCmd prints the piece catalog.
type CatalogCmd struct {
	Type string `arg:"" optional:"" help:"Only show this type id (e.g. L4)"`
}

func (c *CatalogCmd) Run(g *Globals) error {
	r := display.New(os.Stdout, g.NoColor)
	pad := lipgloss.NewStyle().PaddingRight(3)

	types := piece.Types()
	if c.Type != "" {
		t, ok := piece.TypeByID(c.Type)
		if !ok {
			return fmt.Errorf("unknown piece type %q", c.Type)
		}
		types = []piece.Type{t}
	}

	for _, t := range types {
		orientations := piece.Orientations(t.ID)
		fmt.Printf("%s (%s), %d cells, %d orientations", t.Name, t.ID, len(t.Cells), len(orientations))
		if t.ID == piece.SingleID {
			fmt.Printf(", drawn with probability %g", t.Rarity)
		}
		fmt.Println()

		shapes := make([]string, len(orientations))
		for i, cells := range orientations {
			shapes[i] = pad.Render(r.Shape(cells, t.Color))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, shapes...))
		fmt.Println()
	}
	return nil
}
