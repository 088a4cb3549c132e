package pdfview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from the event loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for pdfview and its sub-packages.
// By default, pdfview produces no log output.
//
// Log levels used by pdfview:
//   - [slog.LevelDebug]: engine transitions (selection frozen, stroke
//     committed, search completed)
//   - [slog.LevelWarn]: suspicious input (pointer events while disabled,
//     backend pages with no extractable text)
//
// Pass nil to disable logging (restore the default silent behavior).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// logger returns the active logger for internal use.
func logger() *slog.Logger {
	return loggerPtr.Load()
}
