// Package script replays recorded editing sessions against an editor.
//
// A script is JSON:
//
//	{
//	  "width": 200, "height": 120,
//	  "steps": [
//	    {"op": "tool", "tool": "rect"},
//	    {"op": "color", "color": "#ff0000"},
//	    {"op": "drag", "points": [[10, 10], [60, 40], [90, 80]]},
//	    {"op": "text", "at": [12, 100], "text": "hello"},
//	    {"op": "undo"}
//	  ]
//	}
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// ErrBadStep is returned for a step that is missing arguments or names an
// unknown operation.
var ErrBadStep = errors.New("script: bad step")

// Script is a canvas size plus a list of steps.
type Script struct {
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Steps  []Step `json:"steps"`
}

// Step is one editor operation. Only the fields of its Op are used.
type Step struct {
	Op       string       `json:"op"`
	Tool     string       `json:"tool,omitempty"`
	Color    string       `json:"color,omitempty"`
	Width    int          `json:"width,omitempty"`
	Opacity  *float64     `json:"opacity,omitempty"`
	Points   [][2]float64 `json:"points,omitempty"`
	At       *[2]float64  `json:"at,omitempty"`
	Text     string       `json:"text,omitempty"`
	Optional bool         `json:"optional,omitempty"`
}

// Parse decodes a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	return &s, nil
}

func pt(p [2]float64) pixel.Point { return pixel.Pt(p[0], p[1]) }

// Run applies every step to e in order and stops at the first failure.
func (s *Script) Run(e *editor.Editor) error {
	for i, st := range s.Steps {
		if err := st.apply(e); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	pos, n := e.HistoryPosition()
	logging.Logger().Info("script finished", "steps", len(s.Steps), "history", pos, "states", n)
	return nil
}

func (st Step) apply(e *editor.Editor) error {
	switch st.Op {
	case "tool":
		k, ok := tool.Parse(st.Tool)
		if !ok {
			return fmt.Errorf("%w: unknown tool %q", ErrBadStep, st.Tool)
		}
		e.SetTool(k)
	case "color":
		c, err := pixel.ParseHex(st.Color)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadStep, err)
		}
		e.SetColor(c)
	case "width":
		return e.SetStrokeWidth(st.Width)
	case "opacity":
		if st.Opacity == nil {
			return fmt.Errorf("%w: opacity missing", ErrBadStep)
		}
		return e.SetOpacity(*st.Opacity)
	case "drag":
		return drag(e, st.Points)
	case "text":
		if st.At == nil {
			return fmt.Errorf("%w: text position missing", ErrBadStep)
		}
		return stampText(e, pt(*st.At), st.Text)
	case "undo":
		ok, err := e.Undo()
		if err == nil && !ok && !st.Optional {
			return fmt.Errorf("%w: nothing to undo", ErrBadStep)
		}
		return err
	case "redo":
		ok, err := e.Redo()
		if err == nil && !ok && !st.Optional {
			return fmt.Errorf("%w: nothing to redo", ErrBadStep)
		}
		return err
	case "clear":
		return e.Clear()
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadStep, st.Op)
	}
	return nil
}

// drag presses at the first point, moves through the middle ones and
// releases at the last. A single point is a click.
func drag(e *editor.Editor, pts [][2]float64) error {
	if len(pts) == 0 {
		return fmt.Errorf("%w: drag needs points", ErrBadStep)
	}
	if err := e.GestureStart(pt(pts[0])); err != nil {
		return err
	}
	for _, p := range pts[1:] {
		if err := e.GestureMove(pt(p)); err != nil {
			return err
		}
	}
	return e.GestureEnd(pt(pts[len(pts)-1]))
}

// stampText clicks with the text tool at p and answers the request with s.
func stampText(e *editor.Editor, p pixel.Point, s string) error {
	prev := e.Tool()
	e.SetTool(tool.Text)
	defer e.SetTool(prev)

	if err := drag(e, [][2]float64{{p.X, p.Y}}); err != nil {
		return err
	}
	if _, ok := e.PendingText(); !ok {
		return nil
	}
	return e.SubmitText(s)
}
