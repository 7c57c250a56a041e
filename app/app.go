// Package app wires the HAL, the boot screen and the shell together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"sdos/hal"
	"sdos/internal/buildinfo"
	"sdos/sdos/console"
	"sdos/sdos/fstree"
	"sdos/sdos/shell"
)

type Config struct {
	// SkipBoot starts the shell without the POST screen.
	SkipBoot bool
	// DotDelay is the pause per animated dot, LineDelay the pause after
	// each boot line.
	DotDelay  time.Duration
	LineDelay time.Duration

	// Echo, if set, receives every boot and console line as text.
	Echo io.Writer

	// Now is the shell clock; nil means time.Now.
	Now func() time.Time
	// Seed feeds the games; zero picks one from the clock.
	Seed uint32
}

// Run boots the system and runs the shell until it halts or ctx ends.
// REBOOT resets the CPU when the HAL can, otherwise boot and shell start
// over in place.
func Run(ctx context.Context, h hal.HAL, cfg Config) error {
	if cfg.Seed == 0 {
		cfg.Seed = uint32(time.Now().UnixNano()) | 1
	}
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	surf := hal.NewSurface(fb)
	logf(h, "app: start version=%s", buildinfo.Short())

	for boots := 0; ; boots++ {
		if !cfg.SkipBoot {
			if err := boot(ctx, surf, cfg); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		err := runShell(ctx, h, surf, cfg, cfg.Seed+uint32(boots))
		if !errors.Is(err, shell.ErrReboot) {
			return err
		}

		logf(h, "app: reboot")
		err = h.Reset()
		if err == nil {
			return nil
		}
		if !errors.Is(err, hal.ErrNotImplemented) {
			logf(h, "app: reset: %v", err)
		}
		surf.Clear()
		_ = surf.Display()
	}
}

func runShell(ctx context.Context, h hal.HAL, surf *hal.Surface, cfg Config, seed uint32) (err error) {
	con := console.New(surf, cfg.Echo)
	var in shell.LineReader
	if i := h.Input(); i != nil {
		in = i.Lines()
	}

	sh, err := shell.New(shell.Config{
		Tree:    fstree.Default(),
		Display: con,
		Input:   in,
		Logger:  h.Logger(),
		Version: buildinfo.Version,
		Now:     cfg.Now,
		Seed:    seed,
	})
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			showPanic(h, surf, v)
			err = fmt.Errorf("app: shell panic: %v", v)
		}
	}()
	return sh.Run(ctx)
}

func logf(h hal.HAL, format string, args ...any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
