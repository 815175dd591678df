package subkiller

import "github.com/dariubs/percent"

// ScoreKeeper counts resolved depth charges.
type ScoreKeeper struct {
	Hits   int
	Misses int
}

// Attempts returns hits plus misses.
func (s ScoreKeeper) Attempts() int {
	return s.Hits + s.Misses
}

// Ratio returns hits / (hits + misses) in [0, 1]; zero attempts yield 0.
func (s ScoreKeeper) Ratio() float64 {
	total := s.Attempts()
	if total == 0 {
		return 0
	}
	return percent.PercentOf(s.Hits, total) / 100
}

// Percent returns the ratio as a percentage.
func (s ScoreKeeper) Percent() float64 {
	return s.Ratio() * 100
}
