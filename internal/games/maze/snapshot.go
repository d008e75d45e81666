package maze

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick           uint64
	Seed           int64
	Rows           int
	Cols           int
	Cursor         int
	Steps          int
	State          string
	PlayerRow      int
	PlayerCol      int
	TreasureRow    int
	TreasureCol    int
	TreasurePlaced bool
	Facing         string
	Moves          int
	Par            int
	Score          int
	Paused         bool
	TooSmall       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Rows:     g.cfg.Grid.Rows,
		Cols:     g.cfg.Grid.Cols,
		Par:      g.par,
		Score:    g.score,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		State:    "too_small",
	}
	if g.ctrl == nil {
		return s
	}

	p := g.ctrl.Player()
	t, placed := g.ctrl.Treasure()
	s.Cursor = g.ctrl.Cursor()
	s.Steps = g.ctrl.Len()
	s.State = g.ctrl.State().String()
	s.PlayerRow, s.PlayerCol = p.Row, p.Col
	s.TreasureRow, s.TreasureCol = t.Row, t.Col
	s.TreasurePlaced = placed
	s.Facing = g.ctrl.Facing().String()
	s.Moves = g.ctrl.Moves()
	return s
}
