package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render writes grid as text: a header of column digits, then one line per
// row prefixed with its letter
func Render(w io.Writer, grid *Grid) error {
	var builder strings.Builder

	builder.WriteString(" ")
	for col := 0; col < grid.Cols(); col++ {
		fmt.Fprintf(&builder, " %d", col)
	}

	for row := 0; row < grid.Rows(); row++ {
		fmt.Fprintf(&builder, "\n%c ", 'a'+row)
		for col := 0; col < grid.Cols(); col++ {
			builder.WriteRune(grid.TileAt(Point{Row: row, Col: col}).Glyph())
			builder.WriteString(" ")
		}
	}
	builder.WriteString("\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

// screen buffers everything drawn between two prompts. Its drawing methods
// do not return errors: a failed write sticks in the bufio.Writer, later
// writes are dropped, and the error is returned by flush.
type screen struct {
	out        *bufio.Writer
	clearLines int
}

func newScreen(w io.Writer, clearLines int) *screen {
	return &screen{
		out:        bufio.NewWriter(w),
		clearLines: clearLines,
	}
}

func (screen *screen) clear() {
	screen.out.WriteString(strings.Repeat("\n", screen.clearLines))
}

func (screen *screen) println(a ...interface{}) {
	fmt.Fprintln(screen.out, a...)
}

func (screen *screen) grid(grid *Grid) {
	Render(screen.out, grid)
}

func (screen *screen) flush() error {
	return screen.out.Flush()
}
