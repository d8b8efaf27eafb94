package output

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"led-drops/internal/render"
)

// Sink receives finished frames from the frame loop.
type Sink interface {
	WriteFrame(c *render.Canvas) error
}

// TextSink writes the "<index> : <value>" frame stream, one blank line
// between frames.
type TextSink struct {
	w io.Writer
}

// NewTextSink creates a frame stream on w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// WriteFrame writes the canvas in the textual frame format.
func (s *TextSink) WriteFrame(c *render.Canvas) error {
	if _, err := c.WriteTo(s.w); err != nil {
		return errors.Wrap(err, "write text frame")
	}
	return nil
}

// SkipUnchanged forwards a frame only when it differs from the last one
// forwarded. It suits previews that redraw a whole screen per frame.
type SkipUnchanged struct {
	next Sink
	last []byte
}

// NewSkipUnchanged wraps next.
func NewSkipUnchanged(next Sink) *SkipUnchanged {
	return &SkipUnchanged{next: next}
}

// WriteFrame forwards the canvas unless it matches the last forwarded frame.
func (s *SkipUnchanged) WriteFrame(c *render.Canvas) error {
	frame := c.Bytes()
	if s.last != nil && bytes.Equal(s.last, frame) {
		return nil
	}
	if err := s.next.WriteFrame(c); err != nil {
		return err
	}
	s.last = frame
	return nil
}
