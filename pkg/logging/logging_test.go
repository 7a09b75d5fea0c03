package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLogWritesToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "logs", "netchess.log")
	logger, err := InitLog(dest, "host", "debug")
	if err != nil {
		t.Fatalf("InitLog() error: %v", err)
	}
	logger.Debug("hello board")
	logger.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello board") || !strings.Contains(string(data), "host") {
		t.Fatalf("log file missing entry or component:\n%s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Error("ParseLevel accepted an unknown level")
	}
}
