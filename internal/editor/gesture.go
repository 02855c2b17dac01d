package editor

import (
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// State is the gesture state machine state.
type State int

// Gesture states
const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type phase int

const (
	phaseStart phase = iota
	phaseMove
	phaseEnd
)

// gesture is the record of one press→move→release sequence. The tool and
// style are fixed at press time.
type gesture struct {
	anchor  pixel.Point
	current pixel.Point
	last    pixel.Point
	tool    tool.Kind
	style   tool.Style
}

// State returns the gesture state.
func (e *Editor) State() State { return e.state }

// GestureStart begins a gesture at p. It is ignored while another gesture
// is in progress or a text request is pending.
func (e *Editor) GestureStart(p pixel.Point) error {
	if e.state != Idle || e.pending != nil {
		return nil
	}
	e.state = Dragging
	e.gesture = gesture{
		anchor:  p,
		current: p,
		last:    p,
		tool:    e.tools.Tool(),
		style:   e.tools.Style(),
	}
	logging.Logger().Debug("gesture start", "tool", e.gesture.tool.String(), logging.Point(p.X, p.Y))
	return e.dispatch(phaseStart)
}

// GestureMove moves the gesture to p. It is ignored when no gesture is in
// progress.
func (e *Editor) GestureMove(p pixel.Point) error {
	if e.state != Dragging {
		return nil
	}
	e.gesture.current = p
	err := e.dispatch(phaseMove)
	e.gesture.last = p
	return err
}

// GestureEnd finishes the gesture at p, which may lie outside the canvas.
// Tools that edit on release record one history state.
func (e *Editor) GestureEnd(p pixel.Point) error {
	if e.state != Dragging {
		return nil
	}
	e.gesture.current = p
	err := e.dispatch(phaseEnd)

	k := e.gesture.tool
	e.state = Idle
	e.gesture = gesture{}
	logging.Logger().Debug("gesture end", "tool", k.String(), logging.Point(p.X, p.Y))

	if err != nil {
		return err
	}
	if k.CommitsOnEnd() {
		return e.commit(k.String())
	}
	return nil
}

// dispatch runs the active tool for one phase.
func (e *Editor) dispatch(ph phase) error {
	g := &e.gesture
	switch g.tool {
	case tool.Pencil, tool.Brush, tool.Eraser:
		// The path begins at the anchor; each move rasterizes only the new
		// segment so the stroke accumulates.
		if ph == phaseMove {
			return e.surface.StrokeLine(g.last, g.current, g.style)
		}
	case tool.Line, tool.Rectangle, tool.Circle:
		if ph == phaseStart {
			return nil
		}
		// The canvas has no preview layer: every frame starts from the
		// committed state so earlier previews are wiped.
		if err := e.restoreBase(); err != nil {
			return err
		}
		return e.drawShape()
	case tool.Fill:
		if ph == phaseStart {
			return e.floodFill()
		}
	case tool.Eyedropper:
		if ph == phaseStart {
			e.sample()
		}
	case tool.Text:
		if ph == phaseStart {
			return e.requestText()
		}
	default:
		if ph == phaseStart {
			logging.Logger().Debug("no action for tool", "tool", int(g.tool))
		}
	}
	return nil
}

func (e *Editor) restoreBase() error {
	base, ok := e.history.Current()
	if !ok {
		return nil
	}
	return e.surface.Restore(base)
}

func (e *Editor) drawShape() error {
	g := &e.gesture
	switch g.tool {
	case tool.Line:
		return e.surface.StrokeLine(g.anchor, g.current, g.style)
	case tool.Rectangle:
		return e.surface.StrokeRect(g.anchor, g.current, g.style)
	case tool.Circle:
		return e.surface.StrokeCircle(g.anchor, g.anchor.Dist(g.current), g.style)
	}
	return nil
}

func (e *Editor) inBounds(p pixel.Point) (x, y int, ok bool) {
	x, y = p.Pixel()
	return x, y, x >= 0 && x < e.surface.Width() && y >= 0 && y < e.surface.Height()
}

// floodFill fills at the anchor and records the result immediately.
// Nothing is recorded when the region already has the fill color.
func (e *Editor) floodFill() error {
	x, y, ok := e.inBounds(e.gesture.anchor)
	if !ok {
		return nil
	}
	n, err := e.surface.FloodFill(x, y, e.tools.PaintColor())
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	logging.Logger().Debug("flood fill", logging.Pixel(x, y), "pixels", n)
	return e.commit("fill")
}

// sample picks the color under the anchor as the new stroke color.
func (e *Editor) sample() {
	x, y, ok := e.inBounds(e.gesture.anchor)
	if !ok {
		return
	}
	e.tools.SetColor(e.surface.Sample(x, y))
}
