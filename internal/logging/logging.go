// Package logging holds the logger shared by the drawing packages and the
// attribute helpers they log canvas positions with.
package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger replaces the logger used by the editor, surface, history and
// project packages. Nothing is logged until it is called; nil restores the
// silent default.
//
// Levels:
//   - [slog.LevelDebug]: gesture transitions, history cursor movement
//   - [slog.LevelInfo]: project load/save, exports
//   - [slog.LevelWarn]: recoverable failures (snapshot capture, bad config values)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	current.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return current.Load()
}

// New returns the text logger the command-line tools install: Info and
// above, or Debug when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Point groups a canvas position under "at".
func Point(x, y float64) slog.Attr {
	return slog.Group("at", slog.Float64("x", x), slog.Float64("y", y))
}

// Pixel groups an integer canvas position under "at".
func Pixel(x, y int) slog.Attr {
	return slog.Group("at", slog.Int("x", x), slog.Int("y", y))
}
