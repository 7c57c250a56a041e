//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sdos/app"
	"sdos/hal"
	"sdos/internal/buildinfo"
	"sdos/internal/config"
	"sdos/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window (lines from stdin or -serial, output echoed).")
	flag.StringVar(&cfg.Serial, "serial", cfg.Serial, "Read command lines from this serial port instead of stdin.")
	flag.IntVar(&cfg.Baud, "baud", cfg.Baud, "Serial baud rate.")
	flag.BoolVar(&cfg.OLED, "oled", cfg.OLED, "Mirror frames to an SSD1306 on I2C (Linux).")
	flag.StringVar(&cfg.I2CBus, "i2c", cfg.I2CBus, "I2C bus name for -oled (empty = first bus).")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flag.BoolVar(&cfg.SkipBoot, "skip-boot", cfg.SkipBoot, "Skip the POST screen.")
	flag.DurationVar(&cfg.BootDelay, "boot-delay", cfg.BootDelay, "Delay per animated boot dot.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error.")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json, console.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := run(cfg); err != nil {
		logging.L().Error("sdos: exit", zap.Error(err))
		_ = logging.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logging.L()
	log.Info("sdos: start",
		zap.String("version", buildinfo.Short()),
		zap.Bool("headless", cfg.Headless),
		zap.String("serial", cfg.Serial),
		zap.Bool("oled", cfg.OLED),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hcfg := hal.HostConfig{Logger: logging.Named("hal")}
	appCfg := app.Config{
		SkipBoot:  cfg.SkipBoot,
		DotDelay:  cfg.BootDelay,
		LineDelay: 6 * cfg.BootDelay,
	}

	if cfg.OLED {
		mirror, closeOLED, err := hal.OpenOLED(cfg.I2CBus)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeOLED(); err != nil {
				log.Warn("oled: close", zap.Error(err))
			}
		}()
		hcfg.Mirror = mirror
	}

	var echo io.Writer = os.Stdout
	if cfg.Serial != "" {
		port, err := hal.OpenSerial(cfg.Serial, cfg.Baud)
		if err != nil {
			return err
		}
		defer port.Close()
		hcfg.Lines = hal.ScanLines(port)
		echo = io.MultiWriter(os.Stdout, hal.NewCRLFWriter(port))
	}

	runApp := func(ctx context.Context, h hal.HAL) error {
		return app.Run(ctx, h, appCfg)
	}

	if cfg.Headless || cfg.Serial != "" {
		appCfg.Echo = echo
		return hal.RunHeadless(ctx, hcfg, runApp)
	}
	return hal.RunWindow(ctx, hcfg, hal.WindowConfig{
		Title: "SDOS (" + buildinfo.Short() + ")",
		Scale: cfg.Scale,
	}, runApp)
}
