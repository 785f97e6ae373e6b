package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
)

func TestSetLogger(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logging.Logger().Debug("table classified", slog.Int("table", 2))

	if !strings.Contains(buf.String(), "table classified") {
		t.Errorf("output = %q, want it to contain the message", buf.String())
	}
}

func TestSetLogger_NilDiscards(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	logging.SetLogger(nil)
	l := logging.Logger()
	if l == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger reports Error as enabled")
	}
}

func TestOr(t *testing.T) {
	custom := slog.New(logging.NewBufferedHandler(slog.LevelDebug))
	if logging.Or(custom) != custom {
		t.Error("Or(custom) did not return custom")
	}
	if logging.Or(nil) != logging.Logger() {
		t.Error("Or(nil) did not return the package logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := logging.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBufferedHandler(t *testing.T) {
	h := logging.NewBufferedHandler(slog.LevelInfo)
	l := slog.New(h).With(slog.String("stage", "borders"))

	l.Debug("hidden")
	l.Info("applied", slog.Int("cells", 3))
	l.WithGroup("table").Warn("skipped", slog.String("reason", "floating"))

	lines := h.Lines()
	if len(lines) != 2 {
		t.Fatalf("recorded %d lines, want 2: %q", len(lines), h.String())
	}
	if h.Contains("hidden") {
		t.Error("debug record captured below Info level")
	}
	if !h.Contains(`"stage":"borders"`) {
		t.Error("WithAttrs attributes missing")
	}
	if !h.Contains(`"table":{"reason":"floating"}`) {
		t.Errorf("group attributes missing: %s", h.String())
	}

	h.Reset()
	if h.String() != "" {
		t.Error("Reset() left output behind")
	}
}
