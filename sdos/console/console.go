// Package console is the OLED text sink: a scrolling buffer of short rows
// redrawn in full on every change.
package console

import (
	"image/color"
	"io"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Geometry of the text buffer on a 128x64 panel.
const (
	Rows      = 8
	Columns   = 21
	RowHeight = 8

	// baseline is the y offset of the glyph baseline inside a row.
	baseline = 6
)

var (
	// Font is the 6px wide font rows are drawn with; 21 columns fit 128px.
	Font tinyfont.Fonter = &proggy.TinySZ8pt7b

	ink = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Surface is what the console draws on.
type Surface interface {
	drivers.Displayer
	Clear()
}

// Console keeps the last Rows rows of output and mirrors them to a Surface.
type Console struct {
	surf  Surface
	echo  io.Writer
	lines []string
}

// New returns a console drawing on surf. If echo is non-nil every inserted
// row is also written to it, newline terminated.
func New(surf Surface, echo io.Writer) *Console {
	return &Console{
		surf:  surf,
		echo:  echo,
		lines: make([]string, 0, Rows),
	}
}

// PrintLine appends text, split into rows of at most Columns characters,
// drops the oldest rows beyond Rows and redraws.
func (c *Console) PrintLine(text string) {
	for _, row := range Wrap(text) {
		c.lines = append(c.lines, row)
		if c.echo != nil {
			_, _ = io.WriteString(c.echo, row+"\n")
		}
	}
	if n := len(c.lines); n > Rows {
		c.lines = append(c.lines[:0], c.lines[n-Rows:]...)
	}
	c.redraw()
}

// Clear empties the buffer and blanks the surface.
func (c *Console) Clear() {
	c.lines = c.lines[:0]
	c.redraw()
}

// Lines returns a copy of the retained rows, oldest first.
func (c *Console) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Console) redraw() {
	if c.surf == nil {
		return
	}
	c.surf.Clear()
	for i, row := range c.lines {
		tinyfont.WriteLine(c.surf, Font, 0, int16(i*RowHeight+baseline), row, ink)
	}
	_ = c.surf.Display()
}

// Wrap splits text into rows of at most Columns characters. Empty text is
// a single empty row.
func Wrap(text string) []string {
	r := []rune(text)
	if len(r) <= Columns {
		return []string{text}
	}
	rows := make([]string, 0, (len(r)+Columns-1)/Columns)
	for len(r) > 0 {
		n := Columns
		if n > len(r) {
			n = len(r)
		}
		rows = append(rows, string(r[:n]))
		r = r[n:]
	}
	return rows
}
