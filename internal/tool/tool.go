// Package tool defines the drawing tools and the active tool settings.
package tool

import "strings"

// Kind identifies a drawing tool.
type Kind int

// Tool kinds
const (
	Pencil Kind = iota
	Brush
	Eraser
	Line
	Rectangle
	Circle
	Fill
	Text
	Eyedropper
)

var names = [...]string{
	Pencil:     "pencil",
	Brush:      "brush",
	Eraser:     "eraser",
	Line:       "line",
	Rectangle:  "rectangle",
	Circle:     "circle",
	Fill:       "fill",
	Text:       "text",
	Eyedropper: "eyedropper",
}

// Kinds lists every tool in toolbar order.
func Kinds() []Kind {
	return []Kind{Pencil, Brush, Eraser, Line, Rectangle, Circle, Fill, Text, Eyedropper}
}

// Valid reports whether k is a known tool.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(names)
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return names[k]
}

// Parse returns the tool with the given name. Matching ignores case and
// accepts a few aliases used by other paint programs.
func Parse(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "pen":
		return Pencil, true
	case "rect":
		return Rectangle, true
	case "bucket":
		return Fill, true
	case "picker":
		return Eyedropper, true
	}
	for i, n := range names {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Freehand reports whether the tool paints a path that follows the pointer.
func (k Kind) Freehand() bool {
	return k == Pencil || k == Brush || k == Eraser
}

// Shape reports whether the tool previews from the committed state on every
// move and only commits on release.
func (k Kind) Shape() bool {
	return k == Line || k == Rectangle || k == Circle
}

// CommitsOnEnd reports whether releasing the pointer records a history
// entry. Fill records its own entry on press; eyedropper and text do not
// edit the raster during the drag.
func (k Kind) CommitsOnEnd() bool {
	return k.Freehand() || k.Shape()
}
