//go:build !tinygo

package hal

import (
	"os"

	"go.uber.org/zap"
)

// HostConfig selects the host backends.
type HostConfig struct {
	// Logger receives HAL log lines. Nil discards them.
	Logger *zap.Logger

	// Lines is the command line source. Nil reads stdin.
	Lines LineReader

	// Mirror, if set, receives a copy of every presented frame (e.g. a real OLED).
	Mirror func(buf []byte) error
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	lines  LineReader
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lines := cfg.Lines
	if lines == nil {
		lines = ScanLines(os.Stdin)
	}
	return &hostHAL{
		logger: &hostLogger{log: log},
		fb:     newHostFramebuffer(OLEDWidth, OLEDHeight, cfg.Mirror),
		lines:  lines,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{lines: h.lines} }

// Reset is not available on a host; callers restart in-process instead.
func (h *hostHAL) Reset() error { return ErrNotImplemented }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	lines LineReader
}

func (in hostInput) Lines() LineReader { return in.lines }

type hostLogger struct {
	log *zap.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}
