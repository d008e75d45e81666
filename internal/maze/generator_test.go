package maze

import (
	"errors"
	"math/rand"
	"testing"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// carved applies the full replay to a copy of the grid.
func carved(t *testing.T, rows, cols int, seed int64) (*Grid, Replay) {
	t.Helper()
	g, replay, err := Generate(rows, cols, newRand(seed))
	if err != nil {
		t.Fatalf("Generate(%d, %d) failed: %v", rows, cols, err)
	}
	full := g.Clone()
	full.Apply(replay)
	return full, replay
}

func TestGenerateReturnsAllWallGrid(t *testing.T) {
	g, replay, err := Generate(7, 9, newRand(1))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.Rows() != 7 || g.Cols() != 9 {
		t.Errorf("grid size = %dx%d, expected 7x9", g.Rows(), g.Cols())
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(Pos{r, c}) != Wall {
				t.Fatalf("cell (%d,%d) = %v before replay, expected wall", r, c, g.At(Pos{r, c}))
			}
		}
	}
	if len(replay) == 0 || replay[0] != Start {
		t.Errorf("first replay step = %v, expected %v", replay[0], Start)
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"even rows", 4, 5},
		{"even cols", 5, 6},
		{"too small", 1, 5},
		{"zero", 0, 0},
		{"negative", -3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Generate(tt.rows, tt.cols, newRand(1))
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Generate(%d, %d) error = %v, expected ErrInvalidDimensions", tt.rows, tt.cols, err)
			}
		})
	}
}

func TestGenerateNilSource(t *testing.T) {
	if _, _, err := Generate(5, 5, nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("Generate with nil source error = %v, expected ErrNilSource", err)
	}
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 5}, {7, 13}, {11, 21}, {21, 41}, {31, 9}}

	for _, size := range sizes {
		rows, cols := size[0], size[1]
		for seed := int64(1); seed <= 5; seed++ {
			g, replay := carved(t, rows, cols, seed)

			// Every room must be open.
			for r := 1; r < rows; r += 2 {
				for c := 1; c < cols; c += 2 {
					if !g.IsPath(Pos{r, c}) {
						t.Fatalf("%dx%d seed %d: room (%d,%d) not carved", rows, cols, seed, r, c)
					}
				}
			}

			// Steps are unique, so open cells equal replay length.
			nodes, edges := 0, 0
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if !g.IsPath(Pos{r, c}) {
						continue
					}
					nodes++
					if g.IsPath(Pos{r, c + 1}) {
						edges++
					}
					if g.IsPath(Pos{r + 1, c}) {
						edges++
					}
				}
			}
			if nodes != len(replay) {
				t.Errorf("%dx%d seed %d: %d open cells, replay has %d steps", rows, cols, seed, nodes, len(replay))
			}
			if edges != nodes-1 {
				t.Errorf("%dx%d seed %d: %d adjacencies for %d cells, expected a tree", rows, cols, seed, edges, nodes)
			}

			// No 2x2 open block.
			for r := 0; r < rows-1; r++ {
				for c := 0; c < cols-1; c++ {
					if g.IsPath(Pos{r, c}) && g.IsPath(Pos{r + 1, c}) &&
						g.IsPath(Pos{r, c + 1}) && g.IsPath(Pos{r + 1, c + 1}) {
						t.Errorf("%dx%d seed %d: open 2x2 block at (%d,%d)", rows, cols, seed, r, c)
					}
				}
			}

			if reached := reachable(g, Start); reached != nodes {
				t.Errorf("%dx%d seed %d: reached %d of %d open cells", rows, cols, seed, reached, nodes)
			}
		}
	}
}

// reachable counts open cells connected to from.
func reachable(g *Grid, from Pos) int {
	seen := map[Pos]bool{from: true}
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := p.Add(d)
			if g.IsPath(n) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestGenerateBorderStaysWall(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, replay := carved(t, 9, 15, seed)
		for _, p := range replay {
			if g.OnBorder(p) {
				t.Errorf("seed %d: replay step %v lies on the border", seed, p)
			}
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				p := Pos{r, c}
				if g.OnBorder(p) && g.IsPath(p) {
					t.Errorf("seed %d: border cell %v is open", seed, p)
				}
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	_, a, err := Generate(15, 25, newRand(12345))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	_, b, err := Generate(15, 25, newRand(12345))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("replay lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverges at step %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	_, a, _ := Generate(21, 21, newRand(1))
	_, b, _ := Generate(21, 21, newRand(2))

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical replays")
	}
}

func TestGenerateReplayLength(t *testing.T) {
	g, replay := carved(t, 11, 21, 7)

	visited := 0
	for r := 1; r < g.Rows(); r += 2 {
		for c := 1; c < g.Cols(); c += 2 {
			if g.IsPath(Pos{r, c}) {
				visited++
			}
		}
	}

	if visited != RoomCount(11, 21) {
		t.Errorf("visited rooms = %d, expected %d", visited, RoomCount(11, 21))
	}
	if len(replay) != 2*visited-1 {
		t.Errorf("len(replay) = %d, expected %d", len(replay), 2*visited-1)
	}
}

func TestShuffledDirectionsIsPermutation(t *testing.T) {
	rng := newRand(99)
	for i := 0; i < 50; i++ {
		dirs := shuffledDirections(rng)
		seen := make(map[Direction]bool)
		for _, d := range dirs {
			seen[d] = true
		}
		if len(seen) != 4 {
			t.Fatalf("shuffledDirections() = %v, expected a permutation", dirs)
		}
	}
}

func TestGridString(t *testing.T) {
	g, replay := carved(t, 3, 3, 1)
	if len(replay) != 1 {
		t.Fatalf("3x3 replay length = %d, expected 1", len(replay))
	}
	expected := "###\n# #\n###"
	if g.String() != expected {
		t.Errorf("String() = %q, expected %q", g.String(), expected)
	}
}
