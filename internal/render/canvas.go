package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultWidth is the reference display width in pixels.
	DefaultWidth = 12
	// DefaultHeight is the reference display height in pixels.
	DefaultHeight = 9
)

// Canvas is a fixed-size grid of additive color cells. The size is chosen at
// construction and never changes.
type Canvas struct {
	width, height int
	pixels        []Color // row-major
}

// NewCanvas creates a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear resets every cell to black.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Put adds color onto the cell at x,y. Writes outside the canvas are dropped.
func (c *Canvas) Put(x, y int, color Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	c.pixels[i] = c.pixels[i].Add(color)
}

// At returns the cell at x,y, or black for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Black
	}
	return c.pixels[y*c.width+x]
}

// Bytes returns the frame as row-major r,g,b triples. Index i holds
// channel i%3 of pixel i/3.
func (c *Canvas) Bytes() []byte {
	out := make([]byte, 0, 3*len(c.pixels))
	for _, p := range c.pixels {
		out = append(out, p.R, p.G, p.B)
	}
	return out
}

// WriteTo writes the textual frame: one "<index> : <value>" line per channel
// in row-major R,G,B order, followed by a blank line.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	line := make([]byte, 0, 32)
	for i, v := range c.Bytes() {
		line = strconv.AppendInt(line[:0], int64(i), 10)
		line = append(line, " : "...)
		line = strconv.AppendInt(line, int64(v), 10)
		line = append(line, '\n')
		m, err := bw.Write(line)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	m, err := bw.WriteString("\n")
	n += int64(m)
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// Serialize returns the textual frame written by WriteTo.
func (c *Canvas) Serialize() string {
	var sb strings.Builder
	c.WriteTo(&sb)
	return sb.String()
}
