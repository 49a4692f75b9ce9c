package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed         string `json:"seed"`         // seed the game was played with (for replay)
	Score        int    `json:"score"`        // final score
	Level        int    `json:"level"`        // level reached
	LinesCleared int    `json:"linesCleared"` // lines cleared over the whole game
	Moves        int    `json:"moves"`        // pieces placed
	GameOver     bool   `json:"gameOver"`     // false when the move cap stopped the game
}

// Statistics accumulates results over many games
type Statistics struct {
	Games     int
	SumScore  float64
	SumScore2 float64   // Sum of squares for variance calculation
	Values    []float64 // Every score, for median/percentile calculation

	TotalMoves int
	TotalLines int
	Finished   int // Games that reached game over

	MaxScore  int
	BestSeed  string
	MaxLevel  int
	ZeroLines int // Games that never cleared a line
}

// Mean returns the mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a game result
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	s.Games++
	s.SumScore += score
	s.SumScore2 += score * score
	s.Values = append(s.Values, score)

	s.TotalMoves += result.Moves
	s.TotalLines += result.LinesCleared
	if result.GameOver {
		s.Finished++
	}
	if result.LinesCleared == 0 {
		s.ZeroLines++
	}

	if s.Games == 1 || result.Score > s.MaxScore {
		s.MaxScore = result.Score
		s.BestSeed = result.Seed
	}
	if result.Level > s.MaxLevel {
		s.MaxLevel = result.Level
	}
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the score at the given percentile (0.0 to 1.0),
// interpolating between neighbouring values
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	p = math.Max(0, math.Min(1, p))
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// MeanMoves returns the average number of pieces placed per game
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// MeanLines returns the average number of lines cleared per game
func (s *Statistics) MeanLines() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalLines) / float64(s.Games)
}

// CompletionRate returns the fraction of games that ran to game over
func (s *Statistics) CompletionRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Finished) / float64(s.Games)
}

// Validate checks that the accumulated counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.Finished > s.Games {
		return fmt.Errorf("finished games (%d) exceeds total games (%d)", s.Finished, s.Games)
	}
	if s.ZeroLines > s.Games {
		return fmt.Errorf("games without lines (%d) exceeds total games (%d)", s.ZeroLines, s.Games)
	}
	for _, v := range s.Values {
		if v > float64(s.MaxScore) {
			return fmt.Errorf("score %.0f exceeds recorded max %d", v, s.MaxScore)
		}
	}
	return nil
}

// Summary is the JSON-friendly digest of a Statistics value
type Summary struct {
	Games          int     `json:"games"`
	MeanScore      float64 `json:"meanScore"`
	MedianScore    float64 `json:"medianScore"`
	StdDev         float64 `json:"stdDev"`
	CI95Low        float64 `json:"ci95Low"`
	CI95High       float64 `json:"ci95High"`
	P05            float64 `json:"p05"`
	P95            float64 `json:"p95"`
	MaxScore       int     `json:"maxScore"`
	BestSeed       string  `json:"bestSeed"`
	MaxLevel       int     `json:"maxLevel"`
	MeanMoves      float64 `json:"meanMoves"`
	MeanLines      float64 `json:"meanLines"`
	CompletionRate float64 `json:"completionRate"`
}

// Summarize computes a Summary
func (s *Statistics) Summarize() Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Games:          s.Games,
		MeanScore:      s.Mean(),
		MedianScore:    s.Median(),
		StdDev:         s.StdDev(),
		CI95Low:        low,
		CI95High:       high,
		P05:            s.Percentile(0.05),
		P95:            s.Percentile(0.95),
		MaxScore:       s.MaxScore,
		BestSeed:       s.BestSeed,
		MaxLevel:       s.MaxLevel,
		MeanMoves:      s.MeanMoves(),
		MeanLines:      s.MeanLines(),
		CompletionRate: s.CompletionRate(),
	}
}
