package subkiller

import (
	"fmt"

	"github.com/vovakirdan/subkiller/internal/core"
)

// Visual characters for rendering
const (
	WaterChar     = '░'
	WaveChar      = '~'
	HullChar      = '█'
	DeckChar      = '▓'
	GunChar       = '─'
	ChargeChar    = '●'
	SubChar       = '█'
	PeriscopeChar = '│'
	PortholeChar  = 'o'
	BlastChar     = '*'
	CoreChar      = '#'
	SunChar       = '█'
	CloudChar     = '█'
	HazeChar      = '▒'
)

// BeginBanner is shown while the playfield does not have focus.
const BeginBanner = "CLICK TO BEGIN"

// waterline sits this far below the battleship center line.
const waterline = 20

// cloud puffs as offsets from the cloud bank position: x, y, w, h
var (
	cloudOnePuffs = []core.Rect{
		{X: -290, Y: 25, W: 130, H: 20}, {X: -282, Y: 22, W: 15, H: 15},
		{X: -272, Y: 15, W: 35, H: 20}, {X: -250, Y: 0, W: 50, H: 35},
		{X: -210, Y: 15, W: 40, H: 26},
		{X: -495, Y: 5, W: 170, H: 30}, {X: -465, Y: -20, W: 80, H: 40},
		{X: -485, Y: 0, W: 40, H: 20}, {X: -445, Y: -30, W: 40, H: 40},
		{X: -465, Y: -10, W: 100, H: 30},
		{X: -700, Y: 40, W: 95, H: 20}, {X: -690, Y: 37, W: 20, H: 20},
		{X: -675, Y: 25, W: 30, H: 25}, {X: -650, Y: 35, W: 25, H: 15},
	}
	cloudTwoPuffs = []core.Rect{
		{X: -180, Y: 1, W: 23, H: 13}, {X: -175, Y: 12, W: 25, H: 13},
		{X: -170, Y: -5, W: 23, H: 19}, {X: -155, Y: 2, W: 22, H: 16},
		{X: -155, Y: 15, W: 20, H: 15}, {X: -145, Y: 13, W: 20, H: 16},
		{X: -60, Y: 10, W: 40, H: 20}, {X: -40, Y: 25, W: 35, H: 30},
		{X: -38, Y: 5, W: 35, H: 40}, {X: -10, Y: 12, W: 40, H: 30},
	}
)

// Draw renders the snapshot onto screen, scaling playfield pixels to cells.
// The screen is expected to be sized to the playfield in cells.
func (s Snapshot) Draw(screen *core.Screen) {
	screen.Clear()
	p := painter{screen: screen, cw: s.CellW, ch: s.CellH}
	if p.cw <= 0 {
		p.cw = core.DefaultCellWidth
	}
	if p.ch <= 0 {
		p.ch = core.DefaultCellHeight
	}

	waterY := s.Ship.Y + waterline
	p.fill(core.NewRect(0, waterY, s.Width, s.Height-waterY), WaterChar, core.ColorNavy)

	if s.SceneryEnabled {
		s.drawSky(p)
		s.drawWaves(p, waterY)
	}

	s.drawShip(p)
	s.drawSub(p)
	p.oval(core.NewRect(s.Charge.X-8, s.Charge.Y-8, s.Charge.W, s.Charge.H), ChargeChar, core.ColorOrange)

	s.drawHUD(screen)
}

func (s Snapshot) drawSky(p painter) {
	sc := s.Scenery
	for _, puff := range cloudTwoPuffs {
		p.oval(offset(puff, sc.CloudTwoX, sc.CloudTwoY), HazeChar, core.ColorWhite)
	}

	sun := core.ColorYellow
	if sc.SunBright {
		sun = core.ColorBrightYellow
	}
	p.oval(core.NewRect(sc.SunX, sc.SunY, sunDiameter, sunDiameter), SunChar, sun)

	for _, puff := range cloudOnePuffs {
		p.oval(offset(puff, sc.CloudOneX, sc.CloudOneY), CloudChar, core.ColorBrightWhite)
	}
}

func (s Snapshot) drawWaves(p painter, waterY int) {
	for i := 0; i < s.Width+120; i += 20 {
		x := s.Scenery.WaveX - 40 - i + 20
		p.dot(x, waterY, WaveChar, core.ColorBlue)
		p.dot(x+10, waterY+30, WaveChar, core.ColorCyan)
	}
}

func (s Snapshot) drawShip(p painter) {
	x, y := s.Ship.X, s.Ship.Y

	// Lower half of an ellipse forms the hull.
	hull := core.NewRect(x-130, y-40, 275, 90)
	p.ellipse(hull, core.NewRect(hull.X, y+5, hull.W, 45), HullChar, core.ColorGray)

	p.fill(core.NewRect(x, y-15, 50, 30), DeckChar, core.ColorDarkGray)
	p.fill(core.NewRect(x-40, y-5, 43, 25), DeckChar, core.ColorDarkGray)
	p.fill(core.NewRect(x+50, y, 40, 12), DeckChar, core.ColorDarkGray)
	p.fill(core.NewRect(x-80, y-10, 80, 4), GunChar, core.ColorGray)
}

func (s Snapshot) drawSub(p painter) {
	x, y := s.Sub.X, s.Sub.Y

	p.oval(core.NewRect(x-30, y-15, s.Sub.W, s.Sub.H), SubChar, core.ColorDarkGray)
	p.fill(core.NewRect(x+70, y-30, 50, 25), SubChar, core.ColorDarkGray)
	p.fill(core.NewRect(x+90, y-80, 4, 55), PeriscopeChar, core.ColorGray)
	p.fill(core.NewRect(x+90, y-80, 10, 4), GunChar, core.ColorGray)

	for _, dx := range []int{30, 80, 130} {
		p.dot(x+dx+10, y+10, PortholeChar, core.ColorCyan)
	}

	if s.Sub.Exploding {
		f := s.Sub.Frame
		p.oval(core.NewRect(x+80-8*f, y-4*f, 13*f, 5*f), BlastChar, core.ColorYellow)
		p.oval(core.NewRect(x+80-6*f, y-3*f, 8*f, 2*f), CoreChar, core.ColorRed)
	}
}

func (s Snapshot) drawHUD(screen *core.Screen) {
	screen.DrawTextColor(2, 0, fmt.Sprintf("SCORE:  %d", s.Score.Hits), core.ColorBrightWhite)
	screen.DrawTextColor(2, 1, fmt.Sprintf("MISSES: %d", s.Score.Misses), core.ColorBrightWhite)

	charges := fmt.Sprintf("CHARGES: %d", s.Remaining())
	screen.DrawTextColor(screen.Width()-len(charges)-2, 0, charges, core.ColorSand)
}

// offset moves a puff relative to its cloud bank.
func offset(r core.Rect, x, y int) core.Rect {
	return core.NewRect(r.X+x, r.Y+y, r.W, r.H)
}

// painter maps playfield pixels onto screen cells.
type painter struct {
	screen *core.Screen
	cw, ch int
}

// dot paints the cell containing pixel (x, y).
func (p painter) dot(x, y int, r rune, c core.Color) {
	p.screen.Paint(core.FloorDiv(x, p.cw), core.FloorDiv(y, p.ch), r, c)
}

// fill paints every cell the pixel rectangle touches.
func (p painter) fill(r core.Rect, ch rune, c core.Color) {
	if r.Empty() {
		return
	}
	p.screen.FillRect(r.Scale(p.cw, p.ch), ch, c)
}

// oval paints the ellipse inscribed in the pixel rectangle.
func (p painter) oval(r core.Rect, ch rune, c core.Color) {
	p.ellipse(r, r, ch, c)
}

// ellipse paints the cells of clip whose centers lie inside the ellipse
// inscribed in bounds. An ellipse smaller than a cell still paints the
// cell holding its center.
func (p painter) ellipse(bounds, clip core.Rect, ch rune, c core.Color) {
	if bounds.Empty() || clip.Empty() {
		return
	}
	rx := float64(bounds.W) / 2
	ry := float64(bounds.H) / 2
	cx := float64(bounds.X) + rx
	cy := float64(bounds.Y) + ry

	cells := clip.Scale(p.cw, p.ch)
	painted := false
	for y := cells.Y; y < cells.Bottom(); y++ {
		py := (float64(y) + 0.5) * float64(p.ch)
		if py < float64(clip.Y) || py >= float64(clip.Bottom()) {
			continue
		}
		dy := (py - cy) / ry
		for x := cells.X; x < cells.Right(); x++ {
			px := (float64(x) + 0.5) * float64(p.cw)
			dx := (px - cx) / rx
			if dx*dx+dy*dy <= 1 {
				p.screen.Paint(x, y, ch, c)
				painted = true
			}
		}
	}
	if !painted {
		p.dot(clip.X+clip.W/2, clip.Y+clip.H/2, ch, c)
	}
}
