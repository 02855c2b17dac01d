package surface

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// StrokeLine strokes the straight segment a→b. Freehand tools call it once
// per pointer move so the path accumulates on the canvas.
func (c *Canvas) StrokeLine(a, b pixel.Point, s tool.Style) error {
	return c.stroke(s, boundsOf(s, a, b), func(dc *gg.Context) {
		dc.MoveTo(a.X, a.Y)
		dc.LineTo(b.X, b.Y)
	})
}

// StrokeRect strokes the outline of the rectangle with opposite corners a
// and b.
func (c *Canvas) StrokeRect(a, b pixel.Point, s tool.Style) error {
	x, y := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	w, h := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	return c.stroke(s, boundsOf(s, a, b), func(dc *gg.Context) {
		dc.DrawRectangle(x, y, w, h)
	})
}

// StrokeCircle strokes a circle outline. A zero radius draws nothing.
func (c *Canvas) StrokeCircle(center pixel.Point, r float64, s tool.Style) error {
	if r <= 0 {
		return nil
	}
	bounds := boundsOf(s, pixel.Pt(center.X-r, center.Y-r), pixel.Pt(center.X+r, center.Y+r))
	return c.stroke(s, bounds, func(dc *gg.Context) {
		dc.DrawCircle(center.X, center.Y, r)
	})
}

// stroke applies s, builds the path and strokes it. Erase strokes are
// rasterized into the scratch mask and removed from the canvas within
// bounds.
func (c *Canvas) stroke(s tool.Style, bounds image.Rectangle, path func(dc *gg.Context)) error {
	if c.closed {
		return ErrClosed
	}
	dc := c.dc
	if s.Composite == tool.Erase {
		dc = c.maskContext()
		s.Color = pixel.White
	}

	setColor(dc, s.Color)
	dc.SetLineWidth(s.Width)
	switch s.Cap {
	case tool.CapSquare:
		dc.SetLineCap(gg.LineCapSquare)
		dc.SetLineJoin(gg.LineJoinMiter)
	default:
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
	}

	path(dc)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("surface: stroke: %w", err)
	}

	if s.Composite == tool.Erase {
		return c.eraseMasked(bounds)
	}
	return nil
}

func (c *Canvas) maskContext() *gg.Context {
	if c.mask == nil {
		c.mask = gg.NewContext(c.Width(), c.Height())
	}
	return c.mask
}

// eraseMasked composites the scratch mask onto the canvas with
// destination-out inside r, then clears the mask there. Premultiplied
// storage lets every channel scale by the same factor.
func (c *Canvas) eraseMasked(r image.Rectangle) error {
	if err := c.mask.FlushGPU(); err != nil {
		return fmt.Errorf("surface: flush mask: %w", err)
	}
	if err := c.flush(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	r = r.Intersect(image.Rect(0, 0, c.Width(), c.Height()))
	if r.Empty() {
		return nil
	}
	dst := c.pix()
	src := c.mask.ResizeTarget().Data()
	stride := c.Width() * 4

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * stride
		for x := r.Min.X; x < r.Max.X; x++ {
			i := row + x*4
			cov := uint32(src[i+3])
			if cov == 0 {
				continue
			}
			keep := 255 - cov
			for k := 0; k < 4; k++ {
				dst[i+k] = uint8((uint32(dst[i+k])*keep + 127) / 255)
			}
			src[i], src[i+1], src[i+2], src[i+3] = 0, 0, 0, 0
		}
	}
	return nil
}

// boundsOf returns the pixel rectangle covering a and b grown by the
// stroke width, with slack for anti-aliasing and square caps.
func boundsOf(s tool.Style, a, b pixel.Point) image.Rectangle {
	pad := s.Width + 2
	return image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-pad)),
		int(math.Floor(math.Min(a.Y, b.Y)-pad)),
		int(math.Ceil(math.Max(a.X, b.X)+pad))+1,
		int(math.Ceil(math.Max(a.Y, b.Y)+pad))+1,
	)
}
