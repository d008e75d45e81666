// Package maze holds the maze generator and the game controller that replays
// its carve sequence. It has no I/O and no dependency on the terminal layer,
// so every rule here is testable in isolation.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row, Col int
}

// Add returns the position one cell away in direction d.
func (p Pos) Add(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Replay is the ordered list of cells carved by the generator.
// Each entry flips exactly one cell from Wall to Path.
type Replay []Pos

// ErrInvalidDimensions is returned when rows or cols are even or below 3.
var ErrInvalidDimensions = errors.New("maze: dimensions must be odd and at least 3")

// MinSize is the smallest legal grid dimension.
const MinSize = 3

// ValidDimensions reports whether rows and cols form a legal maze grid.
func ValidDimensions(rows, cols int) bool {
	return rows >= MinSize && cols >= MinSize && rows%2 == 1 && cols%2 == 1
}

// Grid is a rows×cols matrix of cells. The outer border is always Wall.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-Wall grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if !ValidDimensions(rows, cols) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// OnBorder reports whether p is on the outer ring of the grid.
func (g *Grid) OnBorder(p Pos) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.rows-1 || p.Col == g.cols-1
}

// At returns the cell at p. Out-of-bounds positions read as Wall.
func (g *Grid) At(p Pos) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// IsPath reports whether p is an open cell.
func (g *Grid) IsPath(p Pos) bool {
	return g.At(p) == Path
}

// carve opens the cell at p. Border and out-of-bounds positions are ignored.
func (g *Grid) carve(p Pos) bool {
	if !g.InBounds(p) || g.OnBorder(p) {
		return false
	}
	g.cells[p.Row*g.cols+p.Col] = Path
	return true
}

// Apply carves every position of steps in order.
func (g *Grid) Apply(steps Replay) {
	for _, p := range steps {
		g.carve(p)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// String renders the grid as ASCII, '#' for walls and ' ' for paths.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Path {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// View is a read-only window onto a grid owned by someone else.
type View struct {
	g *Grid
}

// View returns a read-only view of g.
func (g *Grid) View() View {
	return View{g: g}
}

// Rows returns the grid height.
func (v View) Rows() int { return v.g.Rows() }

// Cols returns the grid width.
func (v View) Cols() int { return v.g.Cols() }

// At returns the cell at p.
func (v View) At(p Pos) Cell { return v.g.At(p) }

// IsPath reports whether p is an open cell.
func (v View) IsPath(p Pos) bool { return v.g.IsPath(p) }

// String renders the viewed grid as ASCII.
func (v View) String() string { return v.g.String() }
