package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler is a slog.Handler that keeps records in memory as JSON
// lines. Tests use it to assert on what a pass logged.
//
//	h := logging.NewBufferedHandler(slog.LevelDebug)
//	logging.SetLogger(slog.New(h))
//	...
//	if !h.Contains("numbering restored") { ... }
type BufferedHandler struct {
	mu    *sync.Mutex
	buf   *bytes.Buffer
	inner slog.Handler
}

// NewBufferedHandler creates a handler recording records at or above level.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	buf := &bytes.Buffer{}
	return &BufferedHandler{
		mu:    &sync.Mutex{},
		buf:   buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}),
	}
}

// Enabled implements slog.Handler.
func (h *BufferedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *BufferedHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler. The returned handler shares the buffer.
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &BufferedHandler{mu: h.mu, buf: h.buf, inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler. The returned handler shares the buffer.
func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	return &BufferedHandler{mu: h.mu, buf: h.buf, inner: h.inner.WithGroup(name)}
}

// String returns everything recorded so far.
func (h *BufferedHandler) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.String()
}

// Lines returns the recorded JSON lines.
func (h *BufferedHandler) Lines() []string {
	s := strings.TrimSpace(h.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Contains reports whether any record contains substr.
func (h *BufferedHandler) Contains(substr string) bool {
	return strings.Contains(h.String(), substr)
}

// Reset discards all recorded output.
func (h *BufferedHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
}
