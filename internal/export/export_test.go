package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	// top-left corner transparent
	img.SetRGBA(0, 0, color.RGBA{})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"jpg", FormatJPEG},
		{"JPEG", FormatJPEG},
		{".bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
		{"pdf", FormatPDF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/out/drawing.JPG")
	if err != nil || f != FormatJPEG {
		t.Errorf("FormatFromPath = %v, %v", f, err)
	}
	if _, err := FormatFromPath("noext"); err == nil {
		t.Error("FormatFromPath without extension should fail")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		want string
	}{
		{"Sketch", FormatPNG, "Sketch.png"},
		{"  Sketch  ", FormatJPEG, "Sketch.jpg"},
		{"a/b\\c:d", FormatTIFF, "a_b_c_d.tiff"},
		{"", FormatPDF, "untitled.pdf"},
		{"..", FormatBMP, "untitled.bmp"},
	}
	for _, tt := range tests {
		if got := Filename(tt.name, tt.f); got != tt.want {
			t.Errorf("Filename(%q, %v) = %q, want %q", tt.name, tt.f, got, tt.want)
		}
	}
}

func TestEncodePNGLossless(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatPNG); err != nil {
		t.Fatal(err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			r1, g1, b1, a1 := src.At(x, y).RGBA()
			r2, g2, b2, a2 := got.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d, %d) changed", x, y)
			}
		}
	}
}

func TestEncodeJPEGFlattensOnWhite(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), FormatJPEG, WithJPEGQuality(100)); err != nil {
		t.Fatal(err)
	}
	got, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	r, g, b, _ := got.At(0, 0).RGBA()
	if r>>8 < 200 || g>>8 < 200 || b>>8 < 200 {
		t.Errorf("transparent pixel encoded as (%d, %d, %d), want near white", r>>8, g>>8, b>>8)
	}
}

func TestEncodeBMPAndTIFF(t *testing.T) {
	src := testImage()
	for _, tt := range []struct {
		f      Format
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{FormatBMP, func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
		{FormatTIFF, func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) }},
	} {
		var buf bytes.Buffer
		if err := Encode(&buf, src, tt.f); err != nil {
			t.Fatalf("Encode(%v): %v", tt.f, err)
		}
		got, err := tt.decode(&buf)
		if err != nil {
			t.Fatalf("decode %v: %v", tt.f, err)
		}
		if got.Bounds().Size() != src.Bounds().Size() {
			t.Errorf("%v bounds = %v, want %v", tt.f, got.Bounds(), src.Bounds())
		}
	}
}

func TestEncodePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), FormatPDF); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format(99)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(99) = %v, want ErrUnknownFormat", err)
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 4, 4))
	src.SetRGBA(2, 2, color.RGBA{R: 128, A: 128}) // premultiplied half red
	got := Flatten(src, color.White)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.RGBAAt(1, 1); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("transparent pixel = %v, want white", c)
	}
	c := got.RGBAAt(0, 0)
	if c.A != 255 || c.R < 250 || c.G < 120 || c.G > 135 {
		t.Errorf("half red over white = %v, want opaque pink", c)
	}
}
