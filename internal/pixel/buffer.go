package pixel

import "math"

// Buffer is a raw RGBA raster: Width*Height pixels, row-major, 4 bytes per
// pixel, stride Width*4.
//
// Get and Set do not check bounds. Callers test In first; an out-of-range
// access is a programming error.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a zeroed (transparent) buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get reads the pixel at (x, y).
func (b *Buffer) Get(x, y int) Color {
	i := (y*b.Width + x) * 4
	p := b.Pix[i : i+4 : i+4]
	return Color{p[0], p[1], p[2], p[3]}
}

// Set writes the pixel at (x, y).
func (b *Buffer) Set(x, y int, c Color) {
	i := (y*b.Width + x) * 4
	p := b.Pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

// Point is a pointer position in canvas coordinates. Positions are
// fractional; Pixel truncates toward negative infinity.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pixel returns the integer pixel containing p.
func (p Point) Pixel() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
