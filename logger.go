package claydraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for claydraw and its sub-packages.
// By default claydraw produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by claydraw:
//   - [slog.LevelDebug]: gesture and state-machine transitions, aborted
//     selections, ignored prompt input
//   - [slog.LevelInfo]: document-level events (resize, rotate, import, export)
//   - [slog.LevelWarn]: contained failures (overlay drawer errors, history
//     snapshots that fail to encode or decode)
//
// Example:
//
//	claydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by claydraw.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
