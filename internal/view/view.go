// Package view holds the window-independent parts of the interactive front
// end: viewport mapping, texture upload conversion and the text prompt.
package view

import (
	"image/color"

	"github.com/Drawing-master/Drawing-Master/internal/pixel"
)

// Zoom limits
const (
	MinZoom = 0.25
	MaxZoom = 8.0
)

// Viewport maps screen positions to canvas positions. The canvas origin is
// drawn at (OriginX+PanX, OriginY+PanY) and scaled by Zoom.
type Viewport struct {
	OriginX, OriginY float32
	PanX, PanY       float32
	Zoom             float32
}

// NewViewport returns an unscaled viewport anchored at the given screen
// position.
func NewViewport(originX, originY float32) Viewport {
	return Viewport{OriginX: originX, OriginY: originY, Zoom: 1}
}

// ToCanvas converts a screen position to canvas coordinates.
func (v Viewport) ToCanvas(x, y float32) pixel.Point {
	return pixel.Pt(
		float64((x-v.OriginX-v.PanX)/v.Zoom),
		float64((y-v.OriginY-v.PanY)/v.Zoom),
	)
}

// ToScreen converts canvas coordinates to a screen position.
func (v Viewport) ToScreen(p pixel.Point) (x, y float32) {
	return float32(p.X)*v.Zoom + v.OriginX + v.PanX, float32(p.Y)*v.Zoom + v.OriginY + v.PanY
}

// ZoomAt scales by 1+wheel*0.1 keeping the canvas point under (mx, my)
// fixed on screen.
func (v *Viewport) ZoomAt(mx, my, wheel float32) {
	old := v.Zoom
	v.Zoom = clamp(v.Zoom*(1+wheel*0.1), MinZoom, MaxZoom)
	if v.Zoom == old {
		return
	}
	f := v.Zoom / old
	v.PanX = mx - v.OriginX - (mx-v.OriginX-v.PanX)*f
	v.PanY = my - v.OriginY - (my-v.OriginY-v.PanY)*f
}

// Pan moves the canvas by (dx, dy) screen pixels.
func (v *Viewport) Pan(dx, dy float32) {
	v.PanX += dx
	v.PanY += dy
}

// Area is the screen rectangle the canvas is drawn in, edges exclusive.
type Area struct {
	Left, Top, Right, Bottom float32
}

// Contains reports whether (x, y) lies inside a.
func (a Area) Contains(x, y float32) bool {
	return x > a.Left && x < a.Right && y > a.Top && y < a.Bottom
}

// EndsGesture reports whether a drag at (x, y) is over: the button was
// released or the pointer left the area.
func (a Area) EndsGesture(x, y float32, released bool) bool {
	return released || !a.Contains(x, y)
}

func clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Upload converts premultiplied canvas pixels to the straight-alpha colors
// a GPU texture upload expects. dst is reused when large enough.
func Upload(dst []color.RGBA, b *pixel.Buffer) []color.RGBA {
	n := b.Width * b.Height
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		p := b.Pix[i*4 : i*4+4 : i*4+4]
		c := pixel.Color{R: p[0], G: p[1], B: p[2], A: p[3]}.Unpremultiply()
		dst[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return dst
}
