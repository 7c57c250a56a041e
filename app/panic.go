package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"sdos/hal"
	"sdos/sdos/console"
)

// showPanic logs a recovered shell panic with its stack and puts the
// message on the OLED.
func showPanic(h hal.HAL, surf *hal.Surface, v any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("SDOS Panic: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	con := console.New(surf, nil)
	con.PrintLine("SDOS PANIC:")
	con.PrintLine(fmt.Sprint(v))
	con.PrintLine("system halted.")
}
