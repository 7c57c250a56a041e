//go:build !tinygo && !cgo

package hal

import (
	"context"
	"errors"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	Scale int
}

func RunWindow(_ context.Context, _ HostConfig, _ WindowConfig, _ func(context.Context, HAL) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
