package tool

import (
	"errors"
	"fmt"
	"math"

	"github.com/Drawing-master/Drawing-Master/internal/pixel"
)

var (
	// ErrInvalidWidth is returned for stroke widths below 1.
	ErrInvalidWidth = errors.New("stroke width must be positive")
	// ErrInvalidOpacity is returned for opacities outside [0, 1].
	ErrInvalidOpacity = errors.New("opacity must be within [0, 1]")
)

// Composite selects how a draw call combines with the existing pixels.
type Composite int

const (
	// Over paints the source over the destination.
	Over Composite = iota
	// Erase removes destination coverage where the source is drawn.
	Erase
)

// Cap is the end cap used for stroked paths.
type Cap int

// Caps
const (
	CapRound Cap = iota
	CapSquare
)

// Style is the resolved set of rendering parameters for one draw call.
type Style struct {
	Color     pixel.Color // straight RGB; A carries the opacity
	Width     float64
	Composite Composite
	Cap       Cap
}

// Context is the active tool configuration. The zero value is not usable;
// start from NewContext.
type Context struct {
	tool    Kind
	color   pixel.Color
	width   int
	opacity float64
}

// NewContext returns the default settings: pencil, opaque black, width 2.
func NewContext() Context {
	return Context{
		tool:    Pencil,
		color:   pixel.Black,
		width:   2,
		opacity: 1,
	}
}

// Tool returns the active tool.
func (c *Context) Tool() Kind { return c.tool }

// Color returns the active stroke color. Only R, G and B are meaningful.
func (c *Context) Color() pixel.Color { return c.color }

// Width returns the stroke width in pixels.
func (c *Context) Width() int { return c.width }

// Opacity returns the stroke opacity in [0, 1].
func (c *Context) Opacity() float64 { return c.opacity }

// SetTool selects the active tool. Unknown kinds are stored as is; the
// editor ignores them when dispatching.
func (c *Context) SetTool(k Kind) { c.tool = k }

// SetColor sets the stroke color. Alpha is discarded; it is derived from
// the opacity at draw time.
func (c *Context) SetColor(col pixel.Color) {
	c.color = col.WithAlpha(255)
}

// SetWidth sets the stroke width.
func (c *Context) SetWidth(w int) error {
	if w < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, w)
	}
	c.width = w
	return nil
}

// SetOpacity sets the stroke opacity.
func (c *Context) SetOpacity(o float64) error {
	if math.IsNaN(o) || o < 0 || o > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidOpacity, o)
	}
	c.opacity = o
	return nil
}

// Alpha converts the opacity to an 8-bit alpha value.
func (c *Context) Alpha() uint8 {
	return uint8(math.Round(c.opacity * 255))
}

// PaintColor is the stroke color with the opacity folded into alpha, as
// used by fill and text.
func (c *Context) PaintColor() pixel.Color {
	return c.color.WithAlpha(c.Alpha())
}

// FontSize derives the text stamp size from the stroke width.
func (c *Context) FontSize() float64 {
	return float64(12 + c.width*2)
}

// Style resolves the rendering parameters for the active tool. The eraser
// always removes at full strength; every other tool paints the active
// color at the active opacity.
func (c *Context) Style() Style {
	s := Style{
		Color:     c.PaintColor(),
		Width:     float64(c.width),
		Composite: Over,
		Cap:       CapRound,
	}
	switch c.tool {
	case Eraser:
		s.Color = pixel.White
		s.Composite = Erase
	case Pencil:
		s.Cap = CapSquare
	}
	return s
}
