package layout

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/cleanbot/grid"
)

// ErrInvalidConfig indicates GenerateConfig values out of range.
var ErrInvalidConfig = errors.New("layout: invalid generate config")

// GenerateConfig controls Generate.
type GenerateConfig struct {
	Width, Height int

	// Density is the probability (0 ≤ d < 1) that a cell of a room is a
	// barrier. Ignored for mazes.
	Density float64

	// Maze switches to a perfect maze carved by a recursive backtracker.
	// Width and Height are rounded down to odd numbers (minimum 3).
	Maze bool

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (most dead ends opened
	// into loops). Ignored for rooms.
	Braiding float64

	Facing grid.Direction
	Seed   int64 // Optional (0 = Random, see Layout.Seed)
}

// Generate builds a random room or maze. The start cell is always open:
// the center of a room, or (1,1) of a maze. The seed actually used is
// available from the result's Seed method.
func Generate(cfg GenerateConfig) (*Layout, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	l, err := generate(cfg)
	if err != nil {
		return nil, err
	}
	l.seed = cfg.Seed
	return l, nil
}

func generate(cfg GenerateConfig) (*Layout, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Density < 0 || cfg.Density >= 1 {
		return nil, fmt.Errorf("%w: density %v", ErrInvalidConfig, cfg.Density)
	}
	if cfg.Braiding < 0 || cfg.Braiding > 1 {
		return nil, fmt.Errorf("%w: braiding %v", ErrInvalidConfig, cfg.Braiding)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	if cfg.Maze {
		open, start := carveMaze(ensureOdd(cfg.Width), ensureOdd(cfg.Height), cfg.Braiding, rng)
		return New(open, start, cfg.Facing)
	}

	open := make([][]bool, cfg.Height)
	for y := range open {
		open[y] = make([]bool, cfg.Width)
		for x := range open[y] {
			open[y][x] = rng.Float64() >= cfg.Density
		}
	}
	start := grid.Pos(cfg.Width/2, cfg.Height/2)
	open[start.Y][start.X] = true

	return New(open, start, cfg.Facing)
}

// carveMaze runs a recursive backtracker (explicit stack) over the odd
// cells of a w×h all-barrier grid, then optionally braids dead ends.
func carveMaze(w, h int, braiding float64, rng *rand.Rand) ([][]bool, grid.Position) {
	open := make([][]bool, h)
	for y := range open {
		open[y] = make([]bool, w)
	}

	start := grid.Pos(1, 1)
	open[start.Y][start.X] = true
	stack := []grid.Position{start}
	jumps := [4][2]int{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([][2]int, 0, 4)
		for _, d := range jumps {
			nx, ny := curr.X+d[0], curr.Y+d[1]
			// Leave a one-cell border of barriers
			if nx > 0 && nx < w-1 && ny > 0 && ny < h-1 && !open[ny][nx] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		open[curr.Y+d[1]/2][curr.X+d[0]/2] = true
		next := grid.Pos(curr.X+d[0], curr.Y+d[1])
		open[next.Y][next.X] = true
		stack = append(stack, next)
	}

	if braiding > 0 {
		braid(open, braiding, rng)
	}
	return open, start
}

// braid opens, with the given probability, one wall next to each dead end
// so that it joins a neighboring corridor and forms a loop.
func braid(open [][]bool, probability float64, rng *rand.Rand) {
	h, w := len(open), len(open[0])
	steps := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for y := 1; y < h-1; y += 2 {
		for x := 1; x < w-1; x += 2 {
			if !open[y][x] {
				continue
			}
			exits := 0
			for _, d := range steps {
				if open[y+d[1]][x+d[0]] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			walls := make([][2]int, 0, 3)
			for _, d := range steps {
				wx, wy := x+d[0], y+d[1]
				nx, ny := x+2*d[0], y+2*d[1]
				if nx > 0 && nx < w-1 && ny > 0 && ny < h-1 && !open[wy][wx] && open[ny][nx] {
					walls = append(walls, [2]int{wx, wy})
				}
			}
			if len(walls) > 0 {
				c := walls[rng.Intn(len(walls))]
				open[c[1]][c[0]] = true
			}
		}
	}
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}
