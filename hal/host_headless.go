//go:build !tinygo

package hal

import "context"

// RunHeadless runs the OS without opening a window.
//
// Frames still land in the host framebuffer (and cfg.Mirror); text output is
// expected to go through the app's echo writer.
func RunHeadless(ctx context.Context, cfg HostConfig, run func(context.Context, HAL) error) error {
	h := newHost(cfg)
	h.logger.WriteLineString("hal: headless")
	return run(ctx, h)
}
