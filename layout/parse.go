package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/cleanbot/grid"
)

// Parse reads a layout in the text format described in the package doc.
func Parse(r io.Reader) (*Layout, error) {
	var (
		rows   [][]bool
		start  grid.Position
		facing grid.Direction
		starts int
		width  int
		line   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, ";") {
			continue
		}

		row := make([]bool, 0, len(text))
		col := 0
		for _, c := range text {
			col++
			switch c {
			case glyphBarrier:
				row = append(row, false)
			case glyphOpen, ' ':
				row = append(row, true)
			default:
				d, ok := startGlyphs[c]
				if !ok {
					return nil, &CellError{Line: line, Column: col, Rune: c}
				}
				starts++
				start, facing = grid.Pos(len(row), len(rows)), d
				row = append(row, true)
			}
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: read: %w", err)
	}

	// Trailing blank lines carry no cells
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyLayout
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	// Pad short rows with barriers
	for y, row := range rows {
		if len(row) < width {
			rows[y] = append(row, make([]bool, width-len(row))...)
		}
	}

	return New(rows, start, facing)
}

// ParseString parses layout text held in memory.
func ParseString(s string) (*Layout, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses the layout stored at path.
func ParseFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
