package output

import (
	"io"

	"github.com/pkg/errors"

	"led-drops/internal/render"
)

// ANSISink draws frames as truecolor half blocks on a terminal, using the
// alternate screen. Close restores the terminal.
type ANSISink struct {
	w      io.Writer
	opened bool
}

// NewANSISink creates a preview on w.
func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{w: w}
}

// WriteFrame draws the canvas, switching to the alternate screen on first use.
func (s *ANSISink) WriteFrame(c *render.Canvas) error {
	if !s.opened {
		// Setup terminal
		setup := render.EnableAltScreen() + render.HideCursor() + render.ClearScreen()
		if _, err := io.WriteString(s.w, setup); err != nil {
			return errors.Wrap(err, "setup terminal")
		}
		s.opened = true
	}
	if _, err := io.WriteString(s.w, render.ANSIFrame(c)); err != nil {
		return errors.Wrap(err, "write ansi frame")
	}
	return nil
}

// Close shows the cursor and leaves the alternate screen, if a frame was
// ever drawn.
func (s *ANSISink) Close() error {
	if !s.opened {
		return nil
	}
	s.opened = false
	_, err := io.WriteString(s.w, render.ShowCursor()+render.DisableAltScreen())
	return errors.Wrap(err, "restore terminal")
}
