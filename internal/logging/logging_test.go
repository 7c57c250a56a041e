package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdos.log")
	if err := Init(Config{Level: "debug", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Named("shell").Debug("shell: start")
	_ = Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "shell: start") || !strings.Contains(string(b), `"logger":"shell"`) {
		t.Fatalf("log=%q", b)
	}
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdos.log")
	if err := Init(Config{Level: "loud", Format: "console", OutputPath: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !L().Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info level disabled")
	}
	if L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level enabled")
	}
}
