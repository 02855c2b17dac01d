package pixel

import (
	"bytes"
	"image"
)

// Snapshot is an immutable copy of a full raster at one point in time.
// Snapshots are compared by reference in the history; Equal compares
// pixel content.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// NewSnapshot copies pix into a new snapshot. len(pix) must be width*height*4.
func NewSnapshot(width, height int, pix []uint8) *Snapshot {
	cp := make([]uint8, len(pix))
	copy(cp, pix)
	return &Snapshot{width: width, height: height, pix: cp}
}

// SnapshotOf copies b.
func SnapshotOf(b *Buffer) *Snapshot {
	return NewSnapshot(b.Width, b.Height, b.Pix)
}

// Width returns the snapshot width in pixels.
func (s *Snapshot) Width() int { return s.width }

// Height returns the snapshot height in pixels.
func (s *Snapshot) Height() int { return s.height }

// Size returns the number of bytes held by the snapshot.
func (s *Snapshot) Size() int { return len(s.pix) }

// At returns the stored pixel at (x, y). Out-of-range reads return
// Transparent.
func (s *Snapshot) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]}
}

// CopyTo writes the snapshot into dst, which must have the same length.
// It reports whether the sizes matched.
func (s *Snapshot) CopyTo(dst []uint8) bool {
	if len(dst) != len(s.pix) {
		return false
	}
	copy(dst, s.pix)
	return true
}

// Equal reports whether s and o hold identical pixels.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

// Image returns a copy of the snapshot as a premultiplied image.RGBA.
func (s *Snapshot) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}
