// Package scoring tracks score, level and cleared lines for one game.
package scoring

import "math"

const (
	// DefaultPointsPerLine is the base award for one cleared line.
	DefaultPointsPerLine = 10
	// LinesPerLevel is how many cleared lines advance the level by one.
	LinesPerLevel = 10
)

// lineMultipliers is indexed by lines cleared, capped at 4.
var lineMultipliers = [5]float64{0, 1, 1.5, 2, 3}

// Update describes the outcome of one line clear.
type Update struct {
	Points       int `json:"points"` // cumulative score after the clear
	LinesCleared int `json:"linesCleared"`
	TotalLines   int `json:"totalLines"`
	Level        int `json:"level"`
}

// State is a plain snapshot of the counters.
type State struct {
	Score             int `json:"score"`
	TotalLinesCleared int `json:"totalLinesCleared"`
	Level             int `json:"level"`
}

// System accumulates score for a single game. The zero value is not usable;
// create one with New.
type System struct {
	score         int
	totalLines    int
	level         int
	pointsPerLine int
}

// New creates a scoring system starting at level 1.
func New(pointsPerLine int) *System {
	return &System{
		level:         1,
		pointsPerLine: pointsPerLine,
	}
}

// CalculateLineScore returns what clearing linesCleared lines at once is
// worth at the current level, without applying it.
func (s *System) CalculateLineScore(linesCleared int) int {
	if linesCleared <= 0 {
		return 0
	}
	mult := lineMultipliers[min(linesCleared, len(lineMultipliers)-1)]
	points := float64(s.pointsPerLine*linesCleared) * mult * float64(s.level)
	return int(math.Floor(points))
}

// AddPlacementScore awards one point per placed cell, times the level, and
// returns the award.
func (s *System) AddPlacementScore(cellsPlaced int) int {
	points := cellsPlaced * s.level
	s.score += points
	return points
}

// ProcessLineClear applies a line clear and returns the resulting update.
// The level only ever goes up.
func (s *System) ProcessLineClear(linesCleared int) Update {
	s.score += s.CalculateLineScore(linesCleared)
	s.totalLines += linesCleared

	if level := s.totalLines/LinesPerLevel + 1; level > s.level {
		s.level = level
	}

	return Update{
		Points:       s.score,
		LinesCleared: linesCleared,
		TotalLines:   s.totalLines,
		Level:        s.level,
	}
}

// Score returns the current score.
func (s *System) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *System) Level() int { return s.level }

// TotalLinesCleared returns the number of lines cleared so far.
func (s *System) TotalLinesCleared() int { return s.totalLines }

// PointsPerLine returns the configured base award.
func (s *System) PointsPerLine() int { return s.pointsPerLine }

// State returns a snapshot of the counters.
func (s *System) State() State {
	return State{
		Score:             s.score,
		TotalLinesCleared: s.totalLines,
		Level:             s.level,
	}
}

// SetState overwrites the counters. A level below 1 is raised to 1.
func (s *System) SetState(st State) {
	s.score = st.Score
	s.totalLines = st.TotalLinesCleared
	s.level = max(st.Level, 1)
}

// Reset returns to a fresh game.
func (s *System) Reset() {
	s.score = 0
	s.totalLines = 0
	s.level = 1
}
