//go:build tinygo

package main

import (
	"context"
	"time"

	"sdos/app"
	"sdos/hal"
)

func main() {
	h := hal.New()
	cfg := app.Config{
		DotDelay:  50 * time.Millisecond,
		LineDelay: 300 * time.Millisecond,
	}
	if err := app.Run(context.Background(), h, cfg); err != nil {
		h.Logger().WriteLineString("sdos: " + err.Error())
	}
	// The shell halted; idle until power-cycled.
	select {}
}
