package game

import (
	"github.com/lox/hexfall/board"
	"github.com/lox/hexfall/piece"
	"github.com/lox/hexfall/scoring"
)

// State is a snapshot of a game. It shares nothing with the engine, so it
// may be handed to other goroutines or kept after further moves.
type State struct {
	Board             *board.Board
	Tray              []piece.Piece
	Score             int
	Level             int
	TotalLinesCleared int
	GameOver          bool
	LastScoreUpdate   *scoring.Update // most recent line clear, nil if none yet
}

// State returns a snapshot of the current game.
func (e *Engine) State() State {
	s := State{
		Board:             e.board.Clone(),
		Tray:              cloneTray(e.tray),
		Score:             e.scoring.Score(),
		Level:             e.scoring.Level(),
		TotalLinesCleared: e.scoring.TotalLinesCleared(),
		GameOver:          e.gameOver,
	}
	if e.lastUpdate != nil {
		u := *e.lastUpdate
		s.LastScoreUpdate = &u
	}
	return s
}
