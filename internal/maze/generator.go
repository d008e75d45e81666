package maze

import "errors"

// Source is the random number source used for generation and treasure
// placement. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// ErrNilSource is returned when Generate is called without a random source.
var ErrNilSource = errors.New("maze: nil random source")

// Start is the cell where carving begins and where the player spawns.
var Start = Pos{Row: 1, Col: 1}

// frame is one level of the backtracker: the room being explored, its
// shuffled direction order and the next direction to try.
type frame struct {
	at   Pos
	dirs [4]Direction
	next int
}

// Generate builds an all-Wall grid and the replay sequence that carves a
// perfect maze into it.
//
// The walk is a depth-first backtracker over odd-coordinate rooms. Each room
// draws a fresh direction order from rng; for every unvisited neighbour two
// cells away it records the wall between them, then descends before trying
// the next direction. The explicit stack keeps the order identical to the
// recursive formulation without growing the goroutine stack.
func Generate(rows, cols int, rng Source) (*Grid, Replay, error) {
	if rng == nil {
		return nil, nil, ErrNilSource
	}
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, nil, err
	}

	rooms := ((rows - 1) / 2) * ((cols - 1) / 2)
	visited := make([]bool, rows*cols)
	replay := make(Replay, 0, 2*rooms-1)

	visit := func(p Pos) frame {
		visited[p.Row*cols+p.Col] = true
		replay = append(replay, p)
		return frame{at: p, dirs: shuffledDirections(rng)}
	}

	stack := []frame{visit(Start)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		dr, dc := d.Delta()
		n := Pos{Row: top.at.Row + 2*dr, Col: top.at.Col + 2*dc}
		if !interior(n, rows, cols) || visited[n.Row*cols+n.Col] {
			continue
		}
		replay = append(replay, Pos{Row: top.at.Row + dr, Col: top.at.Col + dc})
		stack = append(stack, visit(n))
	}

	return grid, replay, nil
}

// RoomCount returns the number of odd-coordinate rooms in a rows×cols grid.
func RoomCount(rows, cols int) int {
	if !ValidDimensions(rows, cols) {
		return 0
	}
	return ((rows - 1) / 2) * ((cols - 1) / 2)
}

// interior reports whether p is strictly inside the border.
func interior(p Pos, rows, cols int) bool {
	return p.Row >= 1 && p.Row <= rows-2 && p.Col >= 1 && p.Col <= cols-2
}

// shuffledDirections returns the four directions in a uniformly random order
// built by successive swaps.
func shuffledDirections(rng Source) [4]Direction {
	dirs := Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
