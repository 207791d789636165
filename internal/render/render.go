// Package render replays a recorded simulator trace on a terminal screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/cleanbot/grid"
	"github.com/katalvlaran/cleanbot/layout"
	"github.com/katalvlaran/cleanbot/simulator"
)

// Glyphs.
const (
	GlyphBarrier = '█'
	GlyphFloor   = ' '
	GlyphCleaned = '·'
)

var robotGlyphs = [...]rune{grid.Up: '^', grid.Right: '>', grid.Down: 'v', grid.Left: '<'}

var (
	styleBarrier = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault
	styleCleaned = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRobot   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCrash   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Replay steps through a trace and draws the room as the robot saw it.
type Replay struct {
	screen  tcell.Screen
	room    *layout.Layout
	steps   []simulator.Step
	next    int
	current simulator.Step
	cleaned map[grid.Key]struct{}
	moves   int
	turns   int
	crashed bool
}

// NewReplay prepares a replay of steps over room. The first step must be
// the simulator's OpStart record.
func NewReplay(screen tcell.Screen, room *layout.Layout, steps []simulator.Step) *Replay {
	rp := &Replay{
		screen:  screen,
		room:    room,
		steps:   steps,
		cleaned: make(map[grid.Key]struct{}),
		current: simulator.Step{Op: simulator.OpStart, Position: room.Start(), Direction: room.Facing()},
	}
	rp.Advance()
	return rp
}

// Done reports whether every step has been applied.
func (rp *Replay) Done() bool {
	return rp.next >= len(rp.steps)
}

// Progress returns the number of applied steps and the total.
func (rp *Replay) Progress() (int, int) {
	return rp.next, len(rp.steps)
}

// Cleaned reports whether p has been cleaned so far in the replay.
func (rp *Replay) Cleaned(p grid.Position) bool {
	_, ok := rp.cleaned[p.Key()]
	return ok
}

// Advance applies the next step and reports whether one was applied.
func (rp *Replay) Advance() bool {
	if rp.Done() {
		return false
	}
	s := rp.steps[rp.next]
	rp.next++
	rp.current = s

	switch s.Op {
	case simulator.OpStart:
		rp.cleaned[s.Position.Key()] = struct{}{}
	case simulator.OpMove:
		rp.moves++
		rp.cleaned[s.Position.Key()] = struct{}{}
	case simulator.OpTurnLeft, simulator.OpTurnRight:
		rp.turns++
	case simulator.OpCollision:
		rp.crashed = true
	}
	return true
}

// Draw renders the room, the cleaned cells, the robot and a status line.
func (rp *Replay) Draw() {
	rp.screen.Clear()

	for y := 0; y < rp.room.Height(); y++ {
		for x := 0; x < rp.room.Width(); x++ {
			p := grid.Pos(x, y)
			switch {
			case !rp.room.Open(p):
				rp.screen.SetContent(x, y, GlyphBarrier, nil, styleBarrier)
			case rp.Cleaned(p):
				rp.screen.SetContent(x, y, GlyphCleaned, nil, styleCleaned)
			default:
				rp.screen.SetContent(x, y, GlyphFloor, nil, styleFloor)
			}
		}
	}

	robot := styleRobot
	if rp.crashed {
		robot = styleCrash
	}
	pos, dir := rp.current.Position, rp.current.Direction
	glyph := '?'
	if dir.Valid() {
		glyph = robotGlyphs[dir]
	}
	rp.screen.SetContent(pos.X, pos.Y, glyph, nil, robot)

	done, total := rp.Progress()
	status := fmt.Sprintf(" step %d/%d  moves %d  turns %d  cleaned %d ", done, total, rp.moves, rp.turns, len(rp.cleaned))
	drawText(rp.screen, 0, rp.room.Height()+1, status, styleStatus)

	rp.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
