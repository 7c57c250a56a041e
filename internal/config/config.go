// Package config loads the host runner configuration from environment
// variables. Command line flags use these values as their defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the host runner settings.
type Config struct {
	// Input and output
	Headless bool
	Serial   string
	Baud     int

	// Display
	OLED   bool
	I2CBus string
	Scale  int

	// Boot screen
	SkipBoot  bool
	BootDelay time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from SDOS_* environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Headless:  envBool("SDOS_HEADLESS", false),
		Serial:    envOr("SDOS_SERIAL", ""),
		Baud:      envInt("SDOS_BAUD", 115200),
		OLED:      envBool("SDOS_OLED", false),
		I2CBus:    envOr("SDOS_I2C_BUS", ""),
		Scale:     envInt("SDOS_SCALE", 4),
		SkipBoot:  envBool("SDOS_SKIP_BOOT", false),
		BootDelay: envDuration("SDOS_BOOT_DELAY", 50*time.Millisecond),
		LogLevel:  envOr("SDOS_LOG_LEVEL", "info"),
		LogFormat: envOr("SDOS_LOG_FORMAT", "console"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the runner cannot use.
func (c *Config) Validate() error {
	if c.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.Baud)
	}
	if c.Scale < 1 || c.Scale > 16 {
		return fmt.Errorf("config: scale must be 1..16, got %d", c.Scale)
	}
	if c.BootDelay < 0 {
		return fmt.Errorf("config: boot delay must not be negative, got %s", c.BootDelay)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
