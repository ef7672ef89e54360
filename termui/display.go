// Package termui provides a reference terminal collaborator for the engine:
// a [Display] that repaints a status line on draw events and a [Keyboard]
// that turns quit keystrokes into quit signals.
package termui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/axelmagn/mvcloop/mvc"
	"golang.org/x/term"
)

var _ mvc.View = (*Display)(nil)

// Display renders a single status line to a terminal, redrawn in place on
// every draw event.
type Display struct {
	out     io.Writer
	rate    int
	frames  int
	restore func() error
}

// NewDisplay creates a [Display] writing to out.
// The tick rate is only shown in the status line.
func NewDisplay(out io.Writer, tickRate int) *Display {
	return &Display{out: out, rate: tickRate}
}

// Attach puts the terminal backing f into raw mode so keystrokes arrive
// without line buffering. This is a no-op when f is not a terminal, which
// keeps the display usable against pipes and buffers. The terminal is
// restored by OnCleanup.
func (d *Display) Attach(f *os.File) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	d.restore = func() error {
		return term.Restore(fd, oldState)
	}
	return nil
}

// OnDraw repaints the status line.
func (d *Display) OnDraw() error {
	d.frames++
	_, err := fmt.Fprintf(d.out, "\rframe %6d  (%d ticks/s, q to quit)", d.frames, d.rate)
	return err
}

// Frames reports how many times the display has been drawn.
func (d *Display) Frames() int {
	return d.frames
}

// OnCleanup ends the status line and restores the terminal state captured by
// [Display.Attach], if any.
func (d *Display) OnCleanup() error {
	_, writeErr := fmt.Fprint(d.out, "\r\n")
	if d.restore == nil {
		return writeErr
	}
	restoreErr := d.restore()
	d.restore = nil
	return errors.Join(writeErr, restoreErr)
}
