package maze

import (
	"errors"
	"fmt"
	"time"
)

// State is the controller's position in the game lifecycle.
type State int

const (
	// StateGenerating means replay steps are still being applied.
	StateGenerating State = iota
	// StateRevealed means the maze is complete but no treasure exists.
	// Only reachable on grids too small to hold one.
	StateRevealed
	// StateTreasurePlaced means the player can move and hunt the treasure.
	StateTreasurePlaced
	// StateWon means the player reached the treasure. Terminal.
	StateWon
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateRevealed:
		return "revealed"
	case StateTreasurePlaced:
		return "treasure_placed"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	// RevealInterval is the minimum elapsed time between two reveal steps.
	RevealInterval time.Duration
	// Rand picks the treasure location.
	Rand Source
}

var (
	ErrNilGrid       = errors.New("maze: nil grid")
	ErrEmptyReplay   = errors.New("maze: empty replay")
	ErrStartOutside  = errors.New("maze: start position outside grid")
	ErrStartNotRoom  = errors.New("maze: start position is not a room cell")
	ErrStepOutside   = errors.New("maze: replay step outside grid interior")
	ErrNegativeDelay = errors.New("maze: negative reveal interval")
)

// Controller owns the grid being revealed and the player/treasure state.
// It is not safe for concurrent use; the host drives it from one loop.
type Controller struct {
	grid     *Grid
	replay   Replay
	cursor   int
	interval time.Duration
	rng      Source

	state    State
	player   Pos
	treasure Pos
	placed   bool
	facing   Direction
	moves    int
}

// NewController takes the generator output and prepares a game in
// StateGenerating. The grid and replay are copied so the caller keeps no
// alias into controller state.
func NewController(grid *Grid, replay Replay, start Pos, opts Options) (*Controller, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if len(replay) == 0 {
		return nil, ErrEmptyReplay
	}
	if opts.Rand == nil {
		return nil, ErrNilSource
	}
	if opts.RevealInterval < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeDelay, opts.RevealInterval)
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %s in %dx%d", ErrStartOutside, start, grid.Rows(), grid.Cols())
	}
	if grid.OnBorder(start) || start.Row%2 == 0 || start.Col%2 == 0 {
		return nil, fmt.Errorf("%w: %s", ErrStartNotRoom, start)
	}
	for i, p := range replay {
		if !grid.InBounds(p) || grid.OnBorder(p) {
			return nil, fmt.Errorf("%w: step %d at %s", ErrStepOutside, i, p)
		}
	}

	steps := make(Replay, len(replay))
	copy(steps, replay)

	return &Controller{
		grid:     grid.Clone(),
		replay:   steps,
		interval: opts.RevealInterval,
		rng:      opts.Rand,
		state:    StateGenerating,
		player:   start,
		facing:   Down,
	}, nil
}

// Advance applies at most one replay step when elapsed exceeds the reveal
// interval. elapsed is the time the host measured since the last applied
// step; calls at or below the interval leave everything untouched. Returns
// true when a step was applied.
func (c *Controller) Advance(elapsed time.Duration) bool {
	if c.state != StateGenerating {
		return false
	}
	if elapsed <= c.interval {
		return false
	}

	c.grid.carve(c.replay[c.cursor])
	c.cursor++
	if c.cursor == len(c.replay) {
		c.finishReveal()
	}
	return true
}

// RevealAll applies every remaining step at once.
func (c *Controller) RevealAll() {
	if c.state != StateGenerating {
		return
	}
	for ; c.cursor < len(c.replay); c.cursor++ {
		c.grid.carve(c.replay[c.cursor])
	}
	c.finishReveal()
}

func (c *Controller) finishReveal() {
	c.state = StateRevealed
	c.placeTreasure()
}

// placeTreasure picks a uniformly random carved cell other than the player's.
func (c *Controller) placeTreasure() {
	candidates := make([]Pos, 0, len(c.replay))
	for _, p := range c.replay {
		if p != c.player {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return
	}
	c.treasure = candidates[c.rng.Intn(len(candidates))]
	c.placed = true
	c.state = StateTreasurePlaced
}

// TryMove attempts to move the player one cell in direction d.
//
// An unknown direction is a caller bug and returns ErrUnknownDirection.
// Moves before the maze is revealed, after winning, into walls or off the
// grid are ordinary no-ops and return (false, nil).
func (c *Controller) TryMove(d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	if c.state != StateRevealed && c.state != StateTreasurePlaced {
		return false, nil
	}

	c.facing = d
	next := c.player.Add(d)
	if !c.grid.InBounds(next) || !c.grid.IsPath(next) {
		return false, nil
	}

	c.player = next
	c.moves++
	if c.placed && c.player == c.treasure {
		c.state = StateWon
	}
	return true, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// GenerationComplete reports whether every replay step has been applied.
func (c *Controller) GenerationComplete() bool {
	return c.state != StateGenerating
}

// IsWon reports whether the player has reached the treasure.
func (c *Controller) IsWon() bool {
	return c.state == StateWon
}

// Player returns the player's position.
func (c *Controller) Player() Pos {
	return c.player
}

// Treasure returns the treasure position and whether it has been placed.
func (c *Controller) Treasure() (Pos, bool) {
	return c.treasure, c.placed
}

// Facing returns the most recently requested direction.
func (c *Controller) Facing() Direction {
	return c.facing
}

// Moves returns the number of successful moves.
func (c *Controller) Moves() int {
	return c.moves
}

// Cursor returns how many replay steps have been applied.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Len returns the total number of replay steps.
func (c *Controller) Len() int {
	return len(c.replay)
}

// Step returns replay entry i. It panics if i is out of range.
func (c *Controller) Step(i int) Pos {
	return c.replay[i]
}

// Progress returns the revealed fraction in [0, 1].
func (c *Controller) Progress() float64 {
	return float64(c.cursor) / float64(len(c.replay))
}

// Revealed returns a read-only view of the grid as revealed so far.
func (c *Controller) Revealed() View {
	return c.grid.View()
}
