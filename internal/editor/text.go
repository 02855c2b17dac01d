package editor

import (
	"strings"

	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
)

// TextRequest asks the UI for the text to stamp. The editor ignores
// gestures until the request is answered.
type TextRequest struct {
	At    pixel.Point // baseline origin
	Size  float64     // font size in pixels
	Color pixel.Color
}

// PendingText returns the outstanding text request, if any.
func (e *Editor) PendingText() (TextRequest, bool) {
	if e.pending == nil {
		return TextRequest{}, false
	}
	return *e.pending, true
}

func (e *Editor) requestText() error {
	req := TextRequest{
		At:    e.gesture.anchor,
		Size:  e.tools.FontSize(),
		Color: e.tools.PaintColor(),
	}
	e.pending = &req
	logging.Logger().Debug("text requested", logging.Point(req.At.X, req.At.Y), "size", req.Size)
	if e.onText != nil {
		e.onText(req)
	}
	return nil
}

// SubmitText answers the pending text request. Empty or whitespace-only
// input cancels it without drawing or recording anything.
func (e *Editor) SubmitText(s string) error {
	if e.pending == nil {
		return ErrNoTextRequest
	}
	req := *e.pending
	e.pending = nil

	if strings.TrimSpace(s) == "" {
		logging.Logger().Debug("text cancelled")
		return nil
	}
	if err := e.surface.FillText(s, req.At, req.Size, req.Color); err != nil {
		return err
	}
	return e.commit("text")
}

// CancelText drops the pending text request.
func (e *Editor) CancelText() {
	e.pending = nil
}
