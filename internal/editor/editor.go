// Package editor is the drawing core: it turns pointer gestures into raster
// edits on a Surface, keeps the undo/redo history of committed states, and
// holds the active tool settings.
//
// An Editor runs on one goroutine. Every method returns after the edit is
// complete; the only suspended interaction is the text tool, which emits a
// TextRequest and resumes when SubmitText or CancelText is called.
package editor

import (
	"errors"
	"fmt"

	"github.com/Drawing-master/Drawing-Master/internal/history"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// ErrNoTextRequest is returned by SubmitText when no text tool press is
// waiting for input.
var ErrNoTextRequest = errors.New("editor: no pending text request")

// Surface is the raster the editor draws on. Coordinates are canvas pixels.
type Surface interface {
	Width() int
	Height() int

	Capture() (*pixel.Snapshot, error)
	Restore(*pixel.Snapshot) error
	ClearToBackground()

	StrokeLine(a, b pixel.Point, s tool.Style) error
	StrokeRect(a, b pixel.Point, s tool.Style) error
	StrokeCircle(center pixel.Point, r float64, s tool.Style) error
	FillText(text string, at pixel.Point, size float64, c pixel.Color) error
	Sample(x, y int) pixel.Color
	FloodFill(x, y int, c pixel.Color) (int, error)
}

// Editor drives tools over a Surface and records committed states.
type Editor struct {
	surface Surface
	history *history.Log[*pixel.Snapshot]
	tools   tool.Context

	state   State
	gesture gesture
	pending *TextRequest

	onText func(TextRequest)
}

// New creates an editor over s and seeds the history with the current
// (normally blank) content of s.
func New(s Surface, opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editor{
		surface: s,
		history: history.New[*pixel.Snapshot](o.capacity),
		tools:   o.tools,
		onText:  o.onText,
	}

	seed, err := s.Capture()
	if err != nil {
		return nil, fmt.Errorf("editor: capture initial state: %w", err)
	}
	e.history.Push(seed)
	return e, nil
}

// Tool returns the active tool.
func (e *Editor) Tool() tool.Kind { return e.tools.Tool() }

// Color returns the active stroke color.
func (e *Editor) Color() pixel.Color { return e.tools.Color() }

// StrokeWidth returns the active stroke width.
func (e *Editor) StrokeWidth() int { return e.tools.Width() }

// Opacity returns the active opacity.
func (e *Editor) Opacity() float64 { return e.tools.Opacity() }

// SetTool selects the tool used by the next gesture. A gesture in progress
// keeps the tool it started with.
func (e *Editor) SetTool(k tool.Kind) {
	e.tools.SetTool(k)
	logging.Logger().Debug("tool selected", "tool", k.String())
}

// SetColor sets the stroke color. Alpha is ignored; see SetOpacity.
func (e *Editor) SetColor(c pixel.Color) { e.tools.SetColor(c) }

// SetStrokeWidth sets the stroke width in pixels.
func (e *Editor) SetStrokeWidth(n int) error { return e.tools.SetWidth(n) }

// SetOpacity sets the stroke opacity in [0, 1].
func (e *Editor) SetOpacity(o float64) error { return e.tools.SetOpacity(o) }

// Snapshot returns the committed state under the history cursor. Previews
// in progress are never part of it.
func (e *Editor) Snapshot() *pixel.Snapshot {
	s, _ := e.history.Current()
	return s
}

// CanUndo reports whether Undo would change the canvas.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the canvas.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// HistoryPosition returns the 1-based cursor position and the number of
// recorded states.
func (e *Editor) HistoryPosition() (pos, n int) {
	return e.history.Cursor() + 1, e.history.Len()
}

// Undo restores the previous committed state. At the oldest state, or
// while a gesture is in progress, it does nothing and reports false.
func (e *Editor) Undo() (bool, error) {
	if e.state != Idle {
		return false, nil
	}
	s, ok := e.history.Undo()
	if !ok {
		return false, nil
	}
	if err := e.surface.Restore(s); err != nil {
		return true, fmt.Errorf("editor: undo: %w", err)
	}
	return true, nil
}

// Redo restores the next committed state. At the newest state, or while a
// gesture is in progress, it does nothing and reports false.
func (e *Editor) Redo() (bool, error) {
	if e.state != Idle {
		return false, nil
	}
	s, ok := e.history.Redo()
	if !ok {
		return false, nil
	}
	if err := e.surface.Restore(s); err != nil {
		return true, fmt.Errorf("editor: redo: %w", err)
	}
	return true, nil
}

// Clear abandons any gesture or pending text, paints the background and
// records the result as a new state.
func (e *Editor) Clear() error {
	e.state = Idle
	e.gesture = gesture{}
	e.pending = nil
	e.surface.ClearToBackground()
	return e.commit("clear")
}

// Reset discards the history and seeds it with the surface's current
// content. Call it after replacing the surface content wholesale, such as
// when a project is opened.
func (e *Editor) Reset() error {
	s, err := e.surface.Capture()
	if err != nil {
		return fmt.Errorf("editor: reset: %w", err)
	}
	e.state = Idle
	e.gesture = gesture{}
	e.pending = nil
	e.history.Reset(s)
	return nil
}

// commit records the surface as a new history state. A failed capture
// leaves the history untouched.
func (e *Editor) commit(reason string) error {
	s, err := e.surface.Capture()
	if err != nil {
		logging.Logger().Warn("snapshot capture failed", "reason", reason, "err", err)
		return fmt.Errorf("editor: commit %s: %w", reason, err)
	}
	e.history.Push(s)
	logging.Logger().Debug("committed", "reason", reason, "history", e.history.Len())
	return nil
}
