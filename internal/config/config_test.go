package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Headless || cfg.Serial != "" || cfg.Baud != 115200 || cfg.Scale != 4 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.BootDelay != 50*time.Millisecond || cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SDOS_HEADLESS", "true")
	t.Setenv("SDOS_SERIAL", "/dev/ttyUSB0")
	t.Setenv("SDOS_BAUD", "9600")
	t.Setenv("SDOS_OLED", "1")
	t.Setenv("SDOS_I2C_BUS", "1")
	t.Setenv("SDOS_SKIP_BOOT", "yes") // not a bool, keeps the default
	t.Setenv("SDOS_BOOT_DELAY", "0s")
	t.Setenv("SDOS_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Headless || cfg.Serial != "/dev/ttyUSB0" || cfg.Baud != 9600 || !cfg.OLED || cfg.I2CBus != "1" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.SkipBoot || cfg.BootDelay != 0 || cfg.LogFormat != "json" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name string
		env  map[string]string
	}{
		{name: "baud", env: map[string]string{"SDOS_BAUD": "-1"}},
		{name: "scale", env: map[string]string{"SDOS_SCALE": "99"}},
		{name: "boot delay", env: map[string]string{"SDOS_BOOT_DELAY": "-5ms"}},
		{name: "log level", env: map[string]string{"SDOS_LOG_LEVEL": "chatty"}},
		{name: "log format", env: map[string]string{"SDOS_LOG_FORMAT": "xml"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("Load succeeded with %v", tc.env)
			}
		})
	}
}
