package subkiller

import "github.com/vovakirdan/subkiller/internal/core"

// Submarine is the target. It wanders along a fixed depth, reversing at the
// bounds and at random, and sits still while its explosion plays out.
type Submarine struct {
	X, Y       int
	W, H       int
	MovingLeft bool
	Exploding  bool
	Frame      int // Explosion frame, meaningful only while Exploding
}

// Bounds returns the collision rectangle. Its origin is the submarine position.
func (s Submarine) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// Explode starts the explosion sequence.
func (s *Submarine) Explode() {
	s.Exploding = true
	s.Frame = 1
}

// Surface places the submarine at a random x in [0, width) on the given
// depth line with a random heading.
func (s *Submarine) Surface(rng Rand, width, y int) {
	s.X = 0
	if width > 0 {
		s.X = rng.Intn(width)
	}
	s.Y = y
	s.Exploding = false
	s.Frame = 0
	s.MovingLeft = rng.Float64() < 0.5
}

// Advance runs one tick of the explosion countdown. It reports true when the
// countdown reached lastFrame and the submarine must surface again.
func (s *Submarine) Advance(lastFrame int) bool {
	s.Frame++
	return s.Frame >= lastFrame
}

// Cruise moves the submarine one tick. The random reversal is evaluated
// before moving; either bound flips the heading back into [minX, maxX].
func (s *Submarine) Cruise(rng Rand, reverseChance float64, speed, minX, maxX int) {
	if rng.Float64() < reverseChance {
		s.MovingLeft = !s.MovingLeft
	}

	if s.MovingLeft {
		s.X -= speed
	} else {
		s.X += speed
	}

	switch {
	case s.X <= minX:
		s.X = minX
		s.MovingLeft = false
	case s.X > maxX:
		s.X = maxX
		s.MovingLeft = true
	}
}
