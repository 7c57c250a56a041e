package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"sdos/hal"
	"sdos/internal/buildinfo"
	"sdos/sdos/console"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// POST screen, one line per entry. A "..." run is animated dot by dot and
// followed by the status after it.
var postLines = []string{
	"ROM BIOS v2.43.07",
	"(C) 1987 CC INDUSTRY",
	"MEMORY ...... 640K OK",
	"EXT MEM ..... 16M OK",
	"CACHE ....... ENABLED",
	"KEYBOARD ......... OK",
	"FLOPPY A: ........ OK",
	"FLOPPY B: ... NOT FND",
	"HDD 0: ...... 512M OK",
	"CD-ROM D: ........ OK",
	"COM1 COM2 ........ OK",
	"VGA PLUS ......... OK",
	"POST COMPLETE.",
	"LOADING SDOS ......",
}

func bootLines() []string {
	return append(postLines[:len(postLines):len(postLines)], "PICO SDOS v"+buildinfo.Version)
}

// Greeting shown on a clean screen after POST, before the prompt.
var splashLines = []string{
	"wellcome to SDOS",
	"Pi pico",
	"'_'",
}

// boot plays the POST screen and then the greeting on surf through a
// tinyterm terminal, then blanks it.
func boot(ctx context.Context, surf *hal.Surface, cfg Config) error {
	b := newBootWriter(surf)
	for _, line := range bootLines() {
		if err := b.line(ctx, line, cfg.DotDelay); err != nil {
			return err
		}
		if err := b.pause(ctx, line, cfg); err != nil {
			return err
		}
	}
	if err := sleep(ctx, cfg.LineDelay); err != nil {
		return err
	}

	b = newBootWriter(surf)
	for _, line := range splashLines {
		b.write(line + "\n")
		if err := b.pause(ctx, line, cfg); err != nil {
			return err
		}
	}

	surf.Clear()
	return surf.Display()
}

type bootWriter struct {
	t    *tinyterm.Terminal
	surf *hal.Surface
}

// newBootWriter blanks surf and starts a fresh terminal on it.
func newBootWriter(surf *hal.Surface) bootWriter {
	surf.Clear()
	t := tinyterm.NewTerminal(surf)
	t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: console.RowHeight,
		FontOffset: 6,
	})
	return bootWriter{t: t, surf: surf}
}

// pause echoes a finished line and waits LineDelay.
func (b bootWriter) pause(ctx context.Context, line string, cfg Config) error {
	if cfg.Echo != nil {
		_, _ = io.WriteString(cfg.Echo, line+"\n")
	}
	return sleep(ctx, cfg.LineDelay)
}

func (b bootWriter) write(s string) {
	_, _ = fmt.Fprint(b.t, s)
	_ = b.surf.Display()
}

func (b bootWriter) line(ctx context.Context, line string, dotDelay time.Duration) error {
	left, dots, status, ok := splitLeader(line)
	if !ok {
		b.write(line + "\n")
		return nil
	}

	b.write(left + " ")
	for i := 0; i < dots; i++ {
		b.write(".")
		if err := sleep(ctx, dotDelay); err != nil {
			return err
		}
	}
	if status != "" {
		b.write(" " + status)
	}
	b.write("\n")
	return nil
}

// splitLeader splits "LABEL ..... STATUS" into its parts. ok is false when
// line has no "..." leader.
func splitLeader(line string) (left string, dots int, status string, ok bool) {
	i := strings.Index(line, "...")
	if i < 0 {
		return "", 0, "", false
	}
	rest := line[i:]
	for dots < len(rest) && rest[dots] == '.' {
		dots++
	}
	return strings.TrimRight(line[:i], " "), dots, strings.TrimSpace(rest[dots:]), true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
