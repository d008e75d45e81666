package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// facingGlyphs shows which way the player last tried to go.
var facingGlyphs = map[maze.Direction]rune{
	maze.Up:    '▲',
	maze.Down:  '▼',
	maze.Left:  '◀',
	maze.Right: '▶',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall || g.ctrl == nil {
		g.renderOverlay(dst, "Window too small", "Resize or pick an easier preset")
		return
	}

	g.renderGrid(dst)

	switch {
	case g.ctrl.IsWon():
		g.renderOverlay(dst,
			"You found the treasure!",
			fmt.Sprintf("Moves: %d (par %d)  Score: %d", g.ctrl.Moves(), g.par, g.score),
			"R: new maze  B: back  Q: quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	switch {
	case g.ctrl == nil:
		hud = " Maze Runner"
	case !g.ctrl.GenerationComplete():
		hud = fmt.Sprintf(" Maze Runner | Carving %3.0f%%  (%d/%d)  Enter: skip",
			g.ctrl.Progress()*100, g.ctrl.Cursor(), g.ctrl.Len())
	default:
		hud = fmt.Sprintf(" Maze Runner | Moves: %d  Time: %.1fs  Facing: %s  Seed: %d",
			g.ctrl.Moves(), g.playTime.Seconds(), g.ctrl.Facing(), g.seed)
	}
	dst.DrawText(0, 0, hud)

	for x, n := 0, dst.Width(); x < n; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderGrid draws walls, the player and the treasure, two columns per cell.
func (g *Game) renderGrid(dst *core.Screen) {
	view := g.ctrl.Revealed()
	generating := !g.ctrl.GenerationComplete()

	for r := 0; r < view.Rows(); r++ {
		for c := 0; c < view.Cols(); c++ {
			if view.At(maze.Pos{Row: r, Col: c}) == maze.Wall {
				g.drawCell(dst, r, c, '█', '█', core.ColorGray)
			}
		}
	}

	if generating {
		if head, ok := g.lastCarved(); ok {
			g.drawCell(dst, head.Row, head.Col, '░', '░', core.ColorCyan)
		}
		return
	}

	if t, placed := g.ctrl.Treasure(); placed && !g.ctrl.IsWon() {
		g.drawCell(dst, t.Row, t.Col, '$', ' ', core.ColorBrightYellow)
	}
	p := g.ctrl.Player()
	g.drawCell(dst, p.Row, p.Col, facingGlyphs[g.ctrl.Facing()], ' ', core.ColorGreen)
}

// lastCarved returns the most recently revealed cell.
func (g *Game) lastCarved() (maze.Pos, bool) {
	if g.ctrl.Cursor() == 0 {
		return maze.Pos{}, false
	}
	return g.ctrl.Step(g.ctrl.Cursor() - 1), true
}

func (g *Game) drawCell(dst *core.Screen, row, col int, left, right rune, color core.Color) {
	x := g.offsetX + col*cellWidth
	y := g.offsetY + row
	dst.SetColored(x, y, left, color)
	dst.SetColored(x+1, y, right, color)
}

// renderOverlay draws a centered box with one line of text per argument.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := dst.Bounds().Centered(width+4, len(lines)*2+1)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
