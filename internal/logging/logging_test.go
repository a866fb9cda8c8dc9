package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") {
		t.Errorf("output = %q, want warn line", out)
	}
	if l.Enabled(LevelInfo) || !l.Enabled(LevelError) {
		t.Error("Enabled does not match level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(LevelError) {
		t.Error("Discard logger should be disabled at every level")
	}
	l.Error("nothing %s", "happens")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "galaxy.log")
	l, closer, err := NewFile(LevelDebug, DefaultFileConfig(path))
	if err != nil {
		t.Fatalf("NewFile() = %v", err)
	}
	l.Debug("focus %s", "tv")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] focus tv") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewFile_EmptyPath(t *testing.T) {
	if _, _, err := NewFile(LevelInfo, FileConfig{}); err == nil {
		t.Error("NewFile with empty path should fail")
	}
}
