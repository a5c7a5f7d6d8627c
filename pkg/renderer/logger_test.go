package renderer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlogLogger(slog.New(handler))

	logger.Printf("Painted %d pixels\n", 42)

	out := buf.String()
	if !strings.Contains(out, `msg="Painted 42 pixels"`) {
		t.Errorf("Expected message without trailing newline, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("Expected info level, got %q", out)
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlogLogger(slog.New(handler)).WithLevel(slog.LevelDebug)

	logger.Printf("hidden")

	if buf.Len() != 0 {
		t.Errorf("Expected debug record to be filtered, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	// Must not panic
	NewNopLogger().Printf("ignored %d", 1)
}
