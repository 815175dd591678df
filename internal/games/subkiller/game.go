// Package subkiller implements Submarine Killer: a battleship drops depth
// charges on a submarine cruising near the bottom of the playfield.
//
// The simulation works in playfield pixels. The terminal renderer scales
// pixels to cells, so every distance in the configuration keeps its
// classic meaning regardless of the terminal size.
package subkiller

import (
	"github.com/vovakirdan/subkiller/internal/config"
	"github.com/vovakirdan/subkiller/internal/core"
)

// Game owns every sprite of one session. All mutation happens in Step.
type Game struct {
	cfg  config.Config
	rt   core.RuntimeConfig
	rng  Rand
	seed bool // rng comes from the runtime seed, not from WithRand

	width, height int // Playfield in pixels

	ship    Battleship
	charge  DepthCharge
	sub     Submarine
	score   ScoreKeeper
	scenery Scenery

	tick     int
	gameOver bool
}

// Option customises a Game at construction.
type Option func(*Game)

// WithRand replaces the seeded random source. Reset keeps using it.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.seed = false
	}
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg, seed: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "subkiller"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Submarine Killer"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset recreates every entity for a playfield sized by rt.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.setRuntime(rt)
	if g.seed || g.rng == nil {
		g.rng = newRand(rt.Seed)
	}

	g.ship = Battleship{X: g.width / 2, Y: g.shipLine()}

	g.charge = DepthCharge{W: g.cfg.Charge.Width, H: g.cfg.Charge.Height}
	g.charge.Dock(g.ship, g.cfg.Charge.DockOffset)

	g.sub = Submarine{W: g.cfg.Submarine.Width, H: g.cfg.Submarine.Height}
	g.sub.Surface(g.rng, g.width, g.depthLine())

	g.score = ScoreKeeper{}
	g.scenery = newScenery(g.width, g.height)
	g.tick = 0
	g.gameOver = false
}

// Resize adapts a running session to a new playfield size. Scores and
// horizontal positions are kept; the next tick clamps them into the new bounds.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.setRuntime(rt)
	g.ship.Y = g.shipLine()
	g.charge.Follow(g.ship, g.cfg.Charge.DockOffset)
	g.sub.Y = g.depthLine()
}

func (g *Game) setRuntime(rt core.RuntimeConfig) {
	if rt.CellW <= 0 {
		rt.CellW = g.cfg.Display.CellWidth
	}
	if rt.CellH <= 0 {
		rt.CellH = g.cfg.Display.CellHeight
	}
	g.rt = rt
	g.width, g.height = rt.PlayfieldSize()
}

// Step applies the input gathered since the last tick and advances the
// simulation by one tick: battleship, depth charge, submarine, scenery.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	for _, a := range in.Actions {
		if g.apply(a) {
			events = append(events, core.EventDrop)
		}
	}

	g.tick++

	g.ship.Clamp(g.shipRange())

	events, over := g.updateCharge(events)
	if over {
		return core.StepResult{State: g.State(), Events: events}
	}

	events = g.updateSubmarine(events)

	if g.cfg.Scenery.Enabled {
		g.scenery.Update(g.width)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// apply handles one input action. It reports true when a charge was released.
func (g *Game) apply(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		g.ship.Move(-g.cfg.Battleship.Step)
	case core.ActionRight:
		g.ship.Move(g.cfg.Battleship.Step)
	case core.ActionDrop:
		// The last charge may still be exploding; no further drops.
		if g.score.Attempts() >= g.cfg.Game.Charges {
			return false
		}
		if g.charge.Falling() {
			return false
		}
		g.ship.Clamp(g.shipRange())
		g.charge.Follow(g.ship, g.cfg.Charge.DockOffset)
		return g.charge.Release()
	}
	return false
}

// updateCharge runs the game-over check and then the depth charge.
func (g *Game) updateCharge(events []core.Event) ([]core.Event, bool) {
	if g.score.Attempts() >= g.cfg.Game.Charges && !g.sub.Exploding {
		g.gameOver = true
		return append(events, core.EventGameOver), true
	}

	if !g.charge.Falling() {
		g.charge.Follow(g.ship, g.cfg.Charge.DockOffset)
		return events, false
	}

	switch {
	case g.charge.Y > g.height:
		g.score.Misses++
		g.charge.Dock(g.ship, g.cfg.Charge.DockOffset)
		events = append(events, core.EventMiss)
	case g.charge.Bounds().Intersects(g.sub.Bounds()):
		g.score.Hits++
		g.sub.Explode()
		g.charge.Dock(g.ship, g.cfg.Charge.DockOffset)
		events = append(events, core.EventHit)
	default:
		g.charge.Sink(g.cfg.Charge.FallSpeed)
	}
	return events, false
}

func (g *Game) updateSubmarine(events []core.Event) []core.Event {
	sc := g.cfg.Submarine
	if g.sub.Exploding {
		if g.sub.Advance(sc.ExplosionFrames) {
			g.sub.Surface(g.rng, g.width, g.depthLine())
			events = append(events, core.EventSurface)
		}
		return events
	}

	minX, maxX := g.subRange()
	g.sub.Cruise(g.rng, sc.ReverseChance, sc.Speed, minX, maxX)
	return events
}

func (g *Game) shipRange() (int, int) {
	return g.cfg.Battleship.MinX, g.width - g.cfg.Battleship.RightMargin
}

func (g *Game) subRange() (int, int) {
	return g.cfg.Submarine.MinX, g.width - g.cfg.Submarine.RightMargin
}

// shipLine keeps the battleship in the upper part of short playfields.
func (g *Game) shipLine() int {
	return min(g.cfg.Battleship.Y, g.height*5/12)
}

func (g *Game) depthLine() int {
	return g.height - g.cfg.Submarine.Depth
}

// State returns the current scoreboard.
func (g *Game) State() core.GameState {
	return core.GameState{
		Hits:     g.score.Hits,
		Misses:   g.score.Misses,
		Charges:  g.cfg.Game.Charges,
		GameOver: g.gameOver,
	}
}

// Accuracy returns hits / (hits + misses), or 0 before the first attempt.
func (g *Game) Accuracy() float64 {
	return g.score.Ratio()
}

// IsGameOver returns true if the session has ended.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Playfield returns the playfield size in pixels.
func (g *Game) Playfield() (w, h int) {
	return g.width, g.height
}

// Render draws the current frame onto screen.
func (g *Game) Render(screen *core.Screen) {
	g.Snapshot().Draw(screen)
}
