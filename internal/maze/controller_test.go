package maze

import (
	"errors"
	"testing"
	"time"
)

const testInterval = 20 * time.Millisecond

func newController(t *testing.T, rows, cols int, seed int64) *Controller {
	t.Helper()
	g, replay, err := Generate(rows, cols, newRand(seed))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	c, err := NewController(g, replay, Start, Options{
		RevealInterval: testInterval,
		Rand:           newRand(seed + 1),
	})
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	return c
}

func TestNewControllerValidation(t *testing.T) {
	g, replay, _ := Generate(5, 5, newRand(1))
	rng := newRand(2)

	tests := []struct {
		name   string
		grid   *Grid
		replay Replay
		start  Pos
		opts   Options
		want   error
	}{
		{"nil grid", nil, replay, Start, Options{Rand: rng}, ErrNilGrid},
		{"empty replay", g, nil, Start, Options{Rand: rng}, ErrEmptyReplay},
		{"nil rand", g, replay, Start, Options{}, ErrNilSource},
		{"negative interval", g, replay, Start, Options{Rand: rng, RevealInterval: -time.Second}, ErrNegativeDelay},
		{"start outside", g, replay, Pos{9, 9}, Options{Rand: rng}, ErrStartOutside},
		{"start on wall", g, replay, Pos{2, 2}, Options{Rand: rng}, ErrStartNotRoom},
		{"start on border", g, replay, Pos{0, 1}, Options{Rand: rng}, ErrStartNotRoom},
		{"step on border", g, Replay{{0, 1}}, Start, Options{Rand: rng}, ErrStepOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewController(tt.grid, tt.replay, tt.start, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewController() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestControllerDoesNotAliasInput(t *testing.T) {
	g, replay, _ := Generate(7, 7, newRand(3))
	c, err := NewController(g, replay, Start, Options{Rand: newRand(4)})
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	c.RevealAll()

	if g.IsPath(Start) {
		t.Error("controller carved into the caller's grid")
	}
	replay[0] = Pos{5, 5}
	if c.replay[0] != Start {
		t.Error("controller replay changed when caller mutated its slice")
	}
}

func TestAdvanceBelowIntervalIsNoop(t *testing.T) {
	c := newController(t, 9, 9, 1)

	for _, elapsed := range []time.Duration{0, time.Millisecond, testInterval - time.Nanosecond, testInterval} {
		for i := 0; i < 10; i++ {
			if c.Advance(elapsed) {
				t.Fatalf("Advance(%s) applied a step", elapsed)
			}
		}
	}
	if c.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected 0", c.Cursor())
	}
	if c.Revealed().IsPath(Start) {
		t.Error("grid changed after sub-interval advances")
	}
}

func TestAdvanceZeroIntervalNeedsElapsedTime(t *testing.T) {
	g, replay, _ := Generate(7, 7, newRand(5))
	c, err := NewController(g, replay, Start, Options{Rand: newRand(6)})
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}

	if c.Advance(0) {
		t.Error("Advance(0) with a zero interval applied a step")
	}
	if !c.Advance(time.Nanosecond) {
		t.Error("Advance(1ns) with a zero interval did not apply a step")
	}
	if c.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", c.Cursor())
	}
}

func TestRevealAllFinishesPartialReveal(t *testing.T) {
	c := newController(t, 9, 11, 9)
	c.Advance(time.Hour)
	c.Advance(time.Hour)

	c.RevealAll()
	if c.Cursor() != c.Len() {
		t.Errorf("Cursor() = %d, expected %d", c.Cursor(), c.Len())
	}
	if c.State() != StateTreasurePlaced {
		t.Errorf("State() = %v, expected %v", c.State(), StateTreasurePlaced)
	}
	treasure, _ := c.Treasure()
	c.RevealAll()
	if again, _ := c.Treasure(); again != treasure {
		t.Error("second RevealAll moved the treasure")
	}
}

func TestAdvanceAppliesOneStepPerCall(t *testing.T) {
	c := newController(t, 9, 9, 2)

	// A huge elapsed time still applies only a single step.
	if !c.Advance(time.Hour) {
		t.Fatal("Advance(1h) did not apply a step")
	}
	if c.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", c.Cursor())
	}
	if !c.Revealed().IsPath(Start) {
		t.Error("first step should open the start cell")
	}

	for i := 2; i <= c.Len(); i++ {
		c.Advance(testInterval + time.Nanosecond)
		if c.Cursor() != i {
			t.Fatalf("Cursor() = %d after %d advances, expected %d", c.Cursor(), i, i)
		}
	}

	if !c.GenerationComplete() {
		t.Error("generation should be complete after all steps")
	}
	if c.Advance(time.Hour) {
		t.Error("Advance after completion should be a no-op")
	}
	if c.Cursor() != c.Len() {
		t.Errorf("Cursor() = %d, expected %d", c.Cursor(), c.Len())
	}
}

func TestTryMoveBeforeRevealIsNoop(t *testing.T) {
	c := newController(t, 7, 7, 3)
	c.Advance(2 * testInterval)
	c.Advance(2 * testInterval)

	for _, d := range Directions {
		moved, err := c.TryMove(d)
		if err != nil {
			t.Fatalf("TryMove(%v) error: %v", d, err)
		}
		if moved {
			t.Errorf("TryMove(%v) moved during generation", d)
		}
	}
	if c.Player() != Start {
		t.Errorf("Player() = %v, expected %v", c.Player(), Start)
	}
}

func TestTryMoveUnknownDirection(t *testing.T) {
	c := newController(t, 7, 7, 4)
	c.RevealAll()

	for _, d := range []Direction{-1, 4, 42} {
		moved, err := c.TryMove(d)
		if !errors.Is(err, ErrUnknownDirection) {
			t.Errorf("TryMove(%d) error = %v, expected ErrUnknownDirection", d, err)
		}
		if moved {
			t.Errorf("TryMove(%d) reported a move", d)
		}
	}
}

func TestTreasurePlacement(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		c := newController(t, 11, 15, seed)
		if _, placed := c.Treasure(); placed {
			t.Fatalf("seed %d: treasure placed during generation", seed)
		}

		c.RevealAll()

		treasure, placed := c.Treasure()
		if !placed {
			t.Fatalf("seed %d: treasure not placed after reveal", seed)
		}
		if c.State() != StateTreasurePlaced {
			t.Errorf("seed %d: State() = %v, expected %v", seed, c.State(), StateTreasurePlaced)
		}
		if treasure == c.Player() {
			t.Errorf("seed %d: treasure placed on the player at %v", seed, treasure)
		}

		found := false
		for _, p := range c.replay {
			if p == treasure {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %d: treasure %v is not a carved cell", seed, treasure)
		}
	}
}

func TestTreasureUnplacedOnSingleCellMaze(t *testing.T) {
	c := newController(t, 3, 3, 1)
	c.RevealAll()

	if _, placed := c.Treasure(); placed {
		t.Error("3x3 maze has no cell for the treasure")
	}
	if c.State() != StateRevealed {
		t.Errorf("State() = %v, expected %v", c.State(), StateRevealed)
	}
	if c.IsWon() {
		t.Error("game should not be winnable without treasure")
	}
}

func TestTryMoveStaysOnPath(t *testing.T) {
	c := newController(t, 15, 21, 8)
	c.RevealAll()
	// Keep the treasure out of reach so the walk never ends early.
	c.placed = false

	view := c.Revealed()
	rng := newRand(77)
	for i := 0; i < 5000; i++ {
		d := Directions[rng.Intn(len(Directions))]
		before := c.Player()
		moved, err := c.TryMove(d)
		if err != nil {
			t.Fatalf("TryMove(%v) error: %v", d, err)
		}

		p := c.Player()
		if p.Row < 0 || p.Row >= view.Rows() || p.Col < 0 || p.Col >= view.Cols() {
			t.Fatalf("player left the grid at %v", p)
		}
		if !view.IsPath(p) {
			t.Fatalf("player stands on a wall at %v", p)
		}
		if moved && p != before.Add(d) {
			t.Fatalf("moved from %v %v to %v", before, d, p)
		}
		if !moved && p != before {
			t.Fatalf("rejected move changed position from %v to %v", before, p)
		}
		if c.Facing() != d {
			t.Fatalf("Facing() = %v, expected %v", c.Facing(), d)
		}
	}
}

func TestWinScenario(t *testing.T) {
	c := newController(t, 5, 5, 11)
	c.RevealAll()

	// Force the treasure onto an open neighbour of the player.
	var toward Direction = -1
	for _, d := range Directions {
		if c.Revealed().IsPath(c.Player().Add(d)) {
			toward = d
			break
		}
	}
	if toward == -1 {
		t.Fatal("player has no open neighbour in a revealed 5x5 maze")
	}
	c.treasure = c.Player().Add(toward)
	c.placed = true

	moved, err := c.TryMove(toward)
	if err != nil || !moved {
		t.Fatalf("TryMove(%v) = %v, %v; expected a move", toward, moved, err)
	}
	if !c.IsWon() {
		t.Fatal("IsWon() = false after reaching the treasure")
	}

	pos, moves, facing := c.Player(), c.Moves(), c.Facing()
	for _, d := range Directions {
		moved, err := c.TryMove(d)
		if err != nil {
			t.Fatalf("TryMove(%v) after win error: %v", d, err)
		}
		if moved {
			t.Errorf("TryMove(%v) moved after win", d)
		}
	}
	if c.Player() != pos || c.Moves() != moves || c.Facing() != facing {
		t.Error("state changed after the game was won")
	}
	if c.State() != StateWon {
		t.Errorf("State() = %v, expected %v", c.State(), StateWon)
	}
}

func TestProgress(t *testing.T) {
	c := newController(t, 5, 5, 5)
	if c.Progress() != 0 {
		t.Errorf("Progress() = %f, expected 0", c.Progress())
	}
	c.RevealAll()
	if c.Progress() != 1 {
		t.Errorf("Progress() = %f, expected 1", c.Progress())
	}
}
