// Package game implements the rules engine for the hex placement puzzle.
//
// The main type is Engine, which owns a board, a scoring system and a tray
// of pieces. Callers place and rotate tray pieces; the engine clears
// completed lines, refills the tray and detects when nothing fits any more.
//
// # Basic Usage
//
//	cfg := game.DefaultConfig()
//	cfg.Seed = "daily-2024-06-01"
//	e := game.NewEngine(cfg)
//
//	tray := e.Tray()
//	if origins := e.ValidPlacements(tray[0]); len(origins) > 0 {
//	    e.PlacePiece(tray[0], origins[0])
//	}
//	if e.IsGameOver() {
//	    fmt.Println("final score", e.State().Score)
//	}
//
// # Deterministic Games
//
// A non-empty Config.Seed makes every tray, and therefore every game played
// with the same sequence of calls, reproducible. An empty seed uses the
// runtime's random source. Tests that need full control can inject their
// own source with WithRNG, or force positions with SetBoardState and
// SetTray.
//
// # Architecture
//
// Engine delegates to specialised packages:
//   - hex: axial coordinate algebra
//   - board: placement, line detection and clearing
//   - piece: the shape catalog and seeded piece generation
//   - scoring: score, level and line bookkeeping
//
// Every operation runs to completion synchronously. Rule violations are
// reported with boolean results, never errors or panics, and game over is
// an ordinary state that Reset leaves.
package game
