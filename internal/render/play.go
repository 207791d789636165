package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// PlayOptions control Play.
type PlayOptions struct {
	// Delay is the pause between two steps.
	Delay time.Duration
	// ExitWhenDone returns as soon as the last step is drawn instead of
	// waiting for a quit key.
	ExitWhenDone bool
}

// Play animates rp on its screen until the trace ends (with ExitWhenDone),
// the user quits with Esc, Ctrl-C or 'q', or ctx is cancelled. Space
// pauses and resumes. The caller owns the screen and must Fini it.
func Play(ctx context.Context, rp *Replay, opts PlayOptions) error {
	if opts.Delay <= 0 {
		opts.Delay = time.Millisecond
	}
	ticker := time.NewTicker(opts.Delay)
	defer ticker.Stop()

	stop := make(chan struct{})
	defer close(stop)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := rp.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	paused := false
	rp.Draw()
	for {
		if rp.Done() && opts.ExitWhenDone {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					paused = !paused
				}
			case *tcell.EventResize:
				rp.screen.Sync()
				rp.Draw()
			}

		case <-ticker.C:
			if !paused && rp.Advance() {
				rp.Draw()
			}
		}
	}
}
