package hal

import (
	"context"
	"io"
	"sync"
)

const (
	lineQueue = 32

	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyDelete    = 0x7F
)

// LineEditor turns a stream of typed runes into submitted lines.
//
// Printable runes append to the pending line, backspace removes the last
// rune, CR or LF submits and Ctrl-C / Ctrl-D end the input. A CR LF pair
// submits once. If echo is set, the editor writes back what a terminal user
// expects to see.
//
// Up to 32 submitted lines are queued for ReadLine. Feed never blocks: a line
// submitted while the queue is full is dropped.
type LineEditor struct {
	mu      sync.Mutex
	pending []rune
	lastCR  bool
	closed  bool
	lines   chan string
	echo    io.Writer
}

func NewLineEditor(echo io.Writer) *LineEditor {
	return &LineEditor{
		lines: make(chan string, lineQueue),
		echo:  echo,
	}
}

// Feed processes one typed rune.
func (e *LineEditor) Feed(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	cr := e.lastCR
	e.lastCR = false
	switch {
	case r == '\r':
		e.lastCR = true
		e.submitLocked()
	case r == '\n':
		if !cr {
			e.submitLocked()
		}
	case r == keyBackspace || r == keyDelete:
		if n := len(e.pending); n > 0 {
			e.pending = e.pending[:n-1]
			e.write("\b \b")
		}
	case r == keyCtrlC || r == keyCtrlD:
		e.closeLocked()
	case r < 0x20:
	default:
		e.pending = append(e.pending, r)
		e.write(string(r))
	}
}

// Pending returns the line typed so far.
func (e *LineEditor) Pending() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return string(e.pending)
}

// Close ends the input; ReadLine returns io.EOF once queued lines are read.
func (e *LineEditor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *LineEditor) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-e.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (e *LineEditor) submitLocked() {
	line := string(e.pending)
	e.pending = e.pending[:0]
	e.write("\r\n")
	select {
	case e.lines <- line:
	default:
	}
}

func (e *LineEditor) closeLocked() {
	if e.closed {
		return
	}
	e.closed = true
	e.pending = nil
	close(e.lines)
}

func (e *LineEditor) write(s string) {
	if e.echo == nil {
		return
	}
	_, _ = io.WriteString(e.echo, s)
}
