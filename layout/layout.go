package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/gridgraph"
)

var (
	// ErrEmptyLayout indicates a layout without any cell.
	ErrEmptyLayout = errors.New("layout: no cells")
	// ErrNoStart indicates a layout without a start glyph.
	ErrNoStart = errors.New("layout: no start cell")
	// ErrMultipleStarts indicates more than one start glyph.
	ErrMultipleStarts = errors.New("layout: more than one start cell")
	// ErrStartBlocked indicates a start position that is not open floor.
	ErrStartBlocked = errors.New("layout: start cell is not open")
	// ErrUnknownGlyph is wrapped by CellError.
	ErrUnknownGlyph = errors.New("layout: unknown glyph")
)

// CellError locates an unknown glyph in layout text. Line and Column are 1-based.
type CellError struct {
	Line, Column int
	Rune         rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("layout: line %d column %d: unknown glyph %q", e.Line, e.Column, e.Rune)
}

// Unwrap lets errors.Is match ErrUnknownGlyph.
func (e *CellError) Unwrap() error {
	return ErrUnknownGlyph
}

const (
	glyphBarrier = '#'
	glyphOpen    = '.'
)

var startGlyphs = map[rune]grid.Direction{
	'^': grid.Up,
	'>': grid.Right,
	'v': grid.Down,
	'<': grid.Left,
}

// Layout is an immutable room: open/barrier cells plus the robot's start
// cell and initial facing.
type Layout struct {
	graph  *gridgraph.GridGraph
	start  grid.Position
	facing grid.Direction
	seed   int64
}

// New builds a Layout from open[y][x] (true = floor).
func New(open [][]bool, start grid.Position, facing grid.Direction) (*Layout, error) {
	gg, err := gridgraph.NewGridGraph(open)
	if err != nil {
		if errors.Is(err, gridgraph.ErrEmptyGrid) {
			return nil, fmt.Errorf("%w: %w", ErrEmptyLayout, err)
		}
		return nil, fmt.Errorf("layout: %w", err)
	}
	if !gg.Open(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}
	if !facing.Valid() {
		return nil, fmt.Errorf("layout: start facing: %w", grid.ErrInvalidDirection)
	}
	return &Layout{graph: gg, start: start, facing: facing}, nil
}

// Seed returns the random seed Generate used for l, or 0 for a parsed layout.
func (l *Layout) Seed() int64 { return l.seed }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.graph.Width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.graph.Height }

// Start returns the robot's start cell.
func (l *Layout) Start() grid.Position { return l.start }

// Facing returns the robot's initial facing.
func (l *Layout) Facing() grid.Direction { return l.facing }

// Open reports whether p is floor. Everything outside the grid is a barrier.
func (l *Layout) Open(p grid.Position) bool { return l.graph.Open(p) }

// Graph exposes the room as a grid graph for global analysis.
func (l *Layout) Graph() *gridgraph.GridGraph { return l.graph }

// String renders l in the text format accepted by Parse.
func (l *Layout) String() string {
	var sb strings.Builder
	sb.Grow((l.Width() + 1) * l.Height())
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			p := grid.Pos(x, y)
			switch {
			case p == l.start:
				sb.WriteRune(startGlyph(l.facing))
			case l.Open(p):
				sb.WriteByte(glyphOpen)
			default:
				sb.WriteByte(glyphBarrier)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func startGlyph(d grid.Direction) rune {
	for r, g := range startGlyphs {
		if g == d {
			return r
		}
	}
	return '?'
}
