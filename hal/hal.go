package hal

import (
	"context"
	"errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is a 1bpp pixel buffer plus a "present" hook.
//
// The buffer uses the SSD1306 page layout: one byte per column per 8-row page,
// bit 0 is the top row of the page.
type Framebuffer interface {
	Width() int
	Height() int
	Buffer() []byte
	Clear()
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// LineReader yields one line of input per call, without the line terminator.
//
// ReadLine blocks until a line arrives. It returns io.EOF once the source is
// exhausted and ctx.Err() when ctx ends first.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Input provides access to the line input source (if available).
type Input interface {
	Lines() LineReader
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input

	// Reset restarts the CPU. Hosts that cannot do that return ErrNotImplemented.
	Reset() error
}
