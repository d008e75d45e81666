// Package maze plugs the maze generator and controller into the
// game loop: it turns fixed ticks into reveal timing, key actions into
// moves, and draws the maze into a screen buffer.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal columns per maze cell
)

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the YAML config file used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides grid size and reveal pace from the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements registry.Game for the maze.
type Game struct {
	cfg  config.MazeConfig
	ctrl *maze.Controller
	rng  *rand.Rand
	seed int64

	tick        uint64
	tickRate    int
	tickDur     time.Duration
	sinceReveal time.Duration // Time since the last applied reveal step
	playTime    time.Duration // Time spent searching after the reveal
	par         int
	score       int

	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	paused   bool
	tooSmall bool
}

// New creates a maze game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Runner"
}

// Seed returns the seed of the maze currently in play.
func (g *Game) Seed() int64 {
	return g.seed
}

// Reset generates a fresh maze from the runtime seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMaze(configPath)
	if err != nil {
		mc = config.DefaultMazeConfig()
	}
	config.ApplyMazePreset(&mc, difficultyPreset)

	g.cfg = mc
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRateOrDefault()
	g.tickDur = time.Second / time.Duration(g.tickRate)
	g.sinceReveal = 0
	g.playTime = 0
	g.par = -1
	g.score = 0
	g.paused = false
	g.ctrl = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.cfg.Grid.FitScreen && !g.cfg.FitToScreen(g.screenW, g.screenH, cellWidth, hudHeight) {
		g.tooSmall = true
		return
	}
	if g.cfg.Grid.Rows+hudHeight > g.screenH || g.cfg.Grid.Cols*cellWidth > g.screenW {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	grid, replay, err := maze.Generate(g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.rng)
	if err != nil {
		// Config was validated; an error here is a programming bug.
		panic(fmt.Sprintf("maze: generate %dx%d: %v", g.cfg.Grid.Rows, g.cfg.Grid.Cols, err))
	}
	start := maze.Pos{Row: g.cfg.Start.Row, Col: g.cfg.Start.Col}
	ctrl, err := maze.NewController(grid, replay, start, maze.Options{
		RevealInterval: g.cfg.Reveal.Interval(),
		Rand:           g.rng,
	})
	if err != nil {
		panic(fmt.Sprintf("maze: new controller: %v", err))
	}
	g.ctrl = ctrl

	g.offsetX = core.Clamp((g.screenW-g.cfg.Grid.Cols*cellWidth)/2, 0, g.screenW)
	g.offsetY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// New maze with a seed drawn from the current one, so a whole session
	// replays from the first seed.
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.ctrl.IsWon() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.ctrl.GenerationComplete() {
		if input.Has(core.ActionConfirm) {
			g.ctrl.RevealAll()
		} else {
			g.sinceReveal += g.tickDur
			if g.ctrl.Advance(g.sinceReveal) {
				g.sinceReveal = 0
			}
		}
		if g.ctrl.GenerationComplete() {
			g.par = g.ctrl.Par()
		}
		return core.StepResult{State: g.State()}
	}

	if g.ctrl.IsWon() {
		return core.StepResult{State: g.State()}
	}

	g.playTime += g.tickDur
	for _, a := range input.Sequence() {
		d, ok := directionFor(a)
		if !ok {
			continue
		}
		if _, err := g.ctrl.TryMove(d); err != nil {
			panic(err)
		}
		if g.ctrl.IsWon() {
			g.score = g.computeScore()
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps directional actions to maze directions.
func directionFor(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.Up, true
	case core.ActionDown:
		return maze.Down, true
	case core.ActionLeft:
		return maze.Left, true
	case core.ActionRight:
		return maze.Right, true
	default:
		return 0, false
	}
}

// computeScore rewards larger mazes and penalises moves beyond par.
func (g *Game) computeScore() int {
	s := g.cfg.Scoring
	rooms := maze.RoomCount(g.cfg.Grid.Rows, g.cfg.Grid.Cols)
	extra := g.ctrl.Moves()
	if g.par >= 0 {
		extra -= g.par
	}
	score := rooms*s.PointsPerRoom - extra*s.MovePenalty
	return max(score, s.MinScore)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.ctrl != nil && g.ctrl.IsWon()
	return core.GameState{
		Score:    g.score,
		GameOver: won,
		Won:      won,
		Paused:   g.paused,
	}
}

// Result describes the finished run. ok is false until the player wins.
func (g *Game) Result() (core.RunResult, bool) {
	if g.ctrl == nil || !g.ctrl.IsWon() {
		return core.RunResult{}, false
	}
	return core.RunResult{
		Rows:     g.cfg.Grid.Rows,
		Cols:     g.cfg.Grid.Cols,
		Seed:     g.seed,
		Moves:    g.ctrl.Moves(),
		Par:      g.par,
		Duration: g.playTime,
		Score:    g.score,
	}, true
}
