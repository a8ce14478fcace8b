// Package logging holds the process-wide structured logger shared by the
// engine packages. By default nothing is logged.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs l for all engine packages. Passing nil restores the
// silent default. Safe for concurrent use; the audio worker logs from its own
// goroutine.
//
// Levels used:
//   - [slog.LevelDebug]: per-frame diagnostics (hit-test truncation, uploads)
//   - [slog.LevelInfo]: lifecycle (window created, track started)
//   - [slog.LevelWarn]: recoverable failures (glyph fallback, playback errors)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
