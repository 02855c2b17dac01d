// Package pixel provides byte-level access to RGBA raster buffers and the
// immutable snapshots the history keeps of them.
package pixel

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{}
)

// Equal reports whether all four channels match exactly.
func (c Color) Equal(o Color) bool {
	return c == o
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Premultiply scales the color channels by alpha, matching the storage
// format of the raster surface.
func (c Color) Premultiply() Color {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	return Color{
		R: uint8((uint32(c.R)*a + 127) / 255),
		G: uint8((uint32(c.G)*a + 127) / 255),
		B: uint8((uint32(c.B)*a + 127) / 255),
		A: c.A,
	}
}

// Unpremultiply is the inverse of Premultiply. Fully transparent pixels
// carry no color and map to Transparent.
func (c Color) Unpremultiply() Color {
	switch c.A {
	case 0:
		return Transparent
	case 255:
		return c
	}
	a := uint32(c.A)
	un := func(v uint8) uint8 {
		x := (uint32(v)*255 + a/2) / a
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return Color{R: un(c.R), G: un(c.G), B: un(c.B), A: c.A}
}

// NRGBA converts c to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to a straight Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex returns the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
func ParseHex(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	var v [4]uint8
	v[3] = 255
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(s[i])
			if !ok {
				return Color{}, fmt.Errorf("invalid hex color %q", s)
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(s)/2; i++ {
			hi, ok1 := hexNibble(s[2*i])
			lo, ok2 := hexNibble(s[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("invalid hex color %q", s)
			}
			v[i] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return Color{v[0], v[1], v[2], v[3]}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
