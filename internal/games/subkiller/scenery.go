package subkiller

// Scenery holds the decorative background. It never affects play.
type Scenery struct {
	WaveX     int
	CloudOneX int
	CloudOneY int
	CloudTwoX int
	CloudTwoY int
	SunX      int
	SunY      int
	SunBright bool
}

// Scenery drift and wrap distances, in pixels.
const (
	waveStep     = 1
	waveJitter   = 20
	cloudOneStep = 2
	cloudOneWrap = 700
	cloudTwoStep = 3
	cloudTwoWrap = 180
	sunDiameter  = 50
)

func newScenery(w, h int) Scenery {
	return Scenery{
		WaveX:     w,
		CloudOneX: w * 10000 / 13091,
		CloudOneY: h / 18,
		CloudTwoX: w * 10000 / 11520,
		CloudTwoY: h * 10000 / 230769,
		SunX:      w * 5 / 6,
		SunY:      h / 45,
	}
}

// Update drifts everything one tick for a playfield w pixels wide.
func (s *Scenery) Update(w int) {
	if s.WaveX < 0 {
		s.WaveX = w
	} else {
		s.WaveX -= waveStep
		if s.WaveX < w {
			s.WaveX += waveJitter
		}
	}

	if s.CloudTwoX < 0 {
		s.CloudTwoX = w + cloudTwoWrap
	} else {
		s.CloudTwoX -= cloudTwoStep
	}

	s.SunBright = !s.SunBright

	if s.CloudOneX < 0 {
		s.CloudOneX = w + cloudOneWrap
	} else {
		s.CloudOneX -= cloudOneStep
	}
}
