package subkiller

// Snapshot is a value copy of a game at the end of a tick.
// Renderers and reports read snapshots, never the live Game.
type Snapshot struct {
	Width, Height int // Playfield in pixels
	CellW, CellH  int // Pixels per terminal cell
	Tick          int

	Ship    Battleship
	Charge  DepthCharge
	Sub     Submarine
	Score   ScoreKeeper
	Charges int

	Scenery        Scenery
	SceneryEnabled bool

	GameOver bool
}

// Snapshot returns the current state by value.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:          g.width,
		Height:         g.height,
		CellW:          g.rt.CellW,
		CellH:          g.rt.CellH,
		Tick:           g.tick,
		Ship:           g.ship,
		Charge:         g.charge,
		Sub:            g.sub,
		Score:          g.score,
		Charges:        g.cfg.Game.Charges,
		Scenery:        g.scenery,
		SceneryEnabled: g.cfg.Scenery.Enabled,
		GameOver:       g.gameOver,
	}
}

// Remaining returns the charges not yet resolved.
func (s Snapshot) Remaining() int {
	return max(0, s.Charges-s.Score.Attempts())
}
