package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// HalfBlock draws the upper pixel in the foreground color and the lower
	// pixel in the background color, so one terminal row holds two pixel rows.
	HalfBlock = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// WriteHalfBlockSGR writes one half-block cell with truecolor foreground
// (top pixel) and background (bottom pixel).
// Uses combined SGR to avoid state leakage between cells.
func WriteHalfBlockSGR(sb *strings.Builder, top, bottom Color) {
	sb.WriteString("\x1b[0;38;2;")
	sb.WriteString(strconv.Itoa(int(top.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(top.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(top.B)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(bottom.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bottom.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bottom.B)))
	sb.WriteByte('m')
	sb.WriteRune(HalfBlock)
}

// ANSIRows renders the canvas as truecolor half-block terminal rows, two
// pixel rows each. An odd last pixel row is paired with black.
func ANSIRows(c *Canvas) []string {
	rows := make([]string, (c.Height()+1)/2)
	var sb strings.Builder
	for row := range rows {
		sb.Reset()
		for x := 0; x < c.Width(); x++ {
			// At returns black below the last row
			WriteHalfBlockSGR(&sb, c.At(x, 2*row), c.At(x, 2*row+1))
		}
		rows[row] = sb.String()
	}
	return rows
}

// ANSIFrame renders the canvas at the top-left corner of the terminal.
func ANSIFrame(c *Canvas) string {
	var sb strings.Builder
	for i, row := range ANSIRows(c) {
		sb.WriteString(MoveTo(i+1, 1))
		sb.WriteString(row)
		sb.WriteString(Reset)
	}
	return sb.String()
}
