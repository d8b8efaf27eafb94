package output

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"led-drops/internal/render"
)

// ScreenSink draws frames on a tcell screen, two pixel rows per terminal
// row. The screen must already be initialised.
type ScreenSink struct {
	screen tcell.Screen
}

// NewScreenSink wraps an initialised screen.
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// OpenScreen initialises the terminal and returns a sink drawing on it.
func OpenScreen() (*ScreenSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	screen.Clear()
	return NewScreenSink(screen), nil
}

// WriteFrame paints the canvas onto the screen as half-block cells.
func (s *ScreenSink) WriteFrame(c *render.Canvas) error {
	rows := (c.Height() + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < c.Width(); x++ {
			s.screen.SetContent(x, row, render.HalfBlock, nil, cellStyle(c.At(x, 2*row), c.At(x, 2*row+1)))
		}
	}
	s.screen.Show()
	return nil
}

// Close releases the terminal.
func (s *ScreenSink) Close() error {
	s.screen.Fini()
	return nil
}

func cellStyle(top, bottom render.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}
