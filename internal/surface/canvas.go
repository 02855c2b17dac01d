// Package surface is the raster the editor paints on. It owns a single
// flattened pixmap rendered by gg and exposes snapshot capture/restore plus
// the primitive draw calls the tools need.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Drawing-master/Drawing-Master/internal/fill"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
)

var (
	// ErrClosed is returned by operations on a closed canvas.
	ErrClosed = errors.New("surface: canvas closed")
	// ErrSnapshotBudget is returned when a capture would exceed the
	// configured snapshot size.
	ErrSnapshotBudget = errors.New("surface: snapshot exceeds budget")
	// ErrSizeMismatch is returned when restoring a snapshot of other dimensions.
	ErrSizeMismatch = errors.New("surface: snapshot size mismatch")
)

// Canvas is a width×height raster. Pixels are stored as premultiplied RGBA
// bytes, row-major. A Canvas is not safe for concurrent use.
type Canvas struct {
	dc         *gg.Context
	mask       *gg.Context // scratch coverage for erase compositing
	background pixel.Color
	budget     int

	font   *text.FontSource
	faces  map[float64]text.Face
	closed bool

	// flush writes pending accelerated drawing into the pixmap.
	flush func() error
}

// New creates a canvas cleared to the background color.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fontData := o.font
	if fontData == nil {
		fontData = goregular.TTF
	}
	src, err := text.NewFontSource(fontData)
	if err != nil {
		return nil, fmt.Errorf("surface: load font: %w", err)
	}

	c := &Canvas{
		dc:         gg.NewContext(width, height),
		background: o.background,
		budget:     o.snapshotBudget,
		font:       src,
		faces:      make(map[float64]text.Face),
	}
	c.flush = c.dc.FlushGPU
	c.ClearToBackground()
	return c, nil
}

// Close releases the canvas. Further captures fail with ErrClosed.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	errs = append(errs, c.dc.Close())
	if c.mask != nil {
		errs = append(errs, c.mask.Close())
	}
	errs = append(errs, c.font.Close())
	return errors.Join(errs...)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Background returns the color ClearToBackground paints.
func (c *Canvas) Background() pixel.Color { return c.background }

func (c *Canvas) pix() []uint8 {
	return c.dc.ResizeTarget().Data()
}

// Buffer exposes the live pixels. The buffer aliases the canvas and is only
// valid until the next Load with different dimensions.
func (c *Canvas) Buffer() *pixel.Buffer {
	if err := c.flush(); err != nil {
		logging.Logger().Warn("canvas flush failed", "err", err)
	}
	return &pixel.Buffer{Width: c.Width(), Height: c.Height(), Pix: c.pix()}
}

// Capture copies the current pixels into a new snapshot.
func (c *Canvas) Capture() (*pixel.Snapshot, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if err := c.flush(); err != nil {
		return nil, fmt.Errorf("surface: flush: %w", err)
	}
	pix := c.pix()
	if c.budget > 0 && len(pix) > c.budget {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSnapshotBudget, len(pix), c.budget)
	}
	return pixel.NewSnapshot(c.Width(), c.Height(), pix), nil
}

// Restore overwrites the canvas with s.
func (c *Canvas) Restore(s *pixel.Snapshot) error {
	if c.closed {
		return ErrClosed
	}
	if s == nil || s.Width() != c.Width() || s.Height() != c.Height() || !s.CopyTo(c.pix()) {
		return ErrSizeMismatch
	}
	return nil
}

// ClearToBackground paints every pixel with the background color.
func (c *Canvas) ClearToBackground() {
	c.Buffer().Fill(c.background.Premultiply())
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() *image.RGBA {
	if err := c.flush(); err != nil {
		logging.Logger().Warn("canvas flush failed", "err", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	copy(img.Pix, c.pix())
	return img
}

// Load replaces the canvas content with img, resizing the canvas to the
// image bounds when they differ.
func (c *Canvas) Load(img image.Image) error {
	if c.closed {
		return ErrClosed
	}
	b := img.Bounds()
	if b.Dx() != c.Width() || b.Dy() != c.Height() {
		if err := c.dc.Resize(b.Dx(), b.Dy()); err != nil {
			return fmt.Errorf("surface: resize: %w", err)
		}
		if c.mask != nil {
			_ = c.mask.Close()
			c.mask = nil
		}
		logging.Logger().Info("canvas resized", "width", b.Dx(), "height", b.Dy())
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	copy(c.pix(), rgba.Pix)
	return nil
}

// Sample returns the straight color at (x, y), or Transparent outside the
// canvas.
func (c *Canvas) Sample(x, y int) pixel.Color {
	buf := c.Buffer()
	if !buf.In(x, y) {
		return pixel.Transparent
	}
	return buf.Get(x, y).Unpremultiply()
}

// FloodFill replaces the region 4-connected to (x, y) that shares its
// color with col. It returns the number of pixels changed; zero when the
// seed is outside the canvas or already has that color.
func (c *Canvas) FloodFill(x, y int, col pixel.Color) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	if err := c.flush(); err != nil {
		return 0, fmt.Errorf("surface: flush: %w", err)
	}
	buf := &pixel.Buffer{Width: c.Width(), Height: c.Height(), Pix: c.pix()}
	if !buf.In(x, y) {
		return 0, nil
	}
	target := buf.Get(x, y)
	replacement := col.Premultiply()
	if target.Equal(replacement) {
		return 0, nil
	}
	return fill.Fill(buf, x, y, target, replacement), nil
}

// face returns a cached font face of the given size.
func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.font.Face(size)
		c.faces[size] = f
	}
	return f
}

func setColor(dc *gg.Context, col pixel.Color) {
	dc.SetRGBA(
		float64(col.R)/255,
		float64(col.G)/255,
		float64(col.B)/255,
		float64(col.A)/255,
	)
}

// FillText draws s with its baseline starting at p.
func (c *Canvas) FillText(s string, p pixel.Point, size float64, col pixel.Color) error {
	if c.closed {
		return ErrClosed
	}
	c.dc.SetFont(c.face(size))
	setColor(c.dc, col)
	c.dc.DrawString(s, p.X, p.Y)
	return nil
}
