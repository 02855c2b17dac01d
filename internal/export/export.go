// Package export serializes a committed canvas to an image file format.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for a format name or extension that has no
// encoder.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format is an output file format.
type Format int

// Supported formats
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
	FormatPDF
)

// DefaultJPEGQuality is the quality used when none is given.
const DefaultJPEGQuality = 95

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatPDF:  "pdf",
}

var formatExts = [...]string{
	FormatPNG:  ".png",
	FormatJPEG: ".jpg",
	FormatBMP:  ".bmp",
	FormatTIFF: ".tiff",
	FormatPDF:  ".pdf",
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(formatNames) }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if !f.valid() {
		return ""
	}
	return formatExts[f]
}

// ParseFormat accepts a format name or file extension, with or without the
// leading dot, in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "pdf":
		return FormatPDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Filename builds a file name for a project called name. Path separators
// are replaced and an empty name becomes "untitled".
func Filename(name string, f Format) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "untitled"
	}
	return name + f.Ext()
}

// Option configures Encode.
type Option func(*options)

type options struct {
	quality int
}

// WithJPEGQuality sets the JPEG quality in [1, 100]. Out of range values
// fall back to DefaultJPEGQuality.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.quality = q
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, opts ...Option) error {
	o := options{quality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}
	if o.quality < 1 || o.quality > 100 {
		o.quality = DefaultJPEGQuality
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		// JPEG has no alpha channel.
		err = jpeg.Encode(w, Flatten(img, color.White), &jpeg.Options{Quality: o.quality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		err = encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", f, err)
	}
	return nil
}

// Flatten composites img over an opaque background.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// encodePDF writes a single page the size of img, one point per pixel.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	var raster bytes.Buffer
	if err := png.Encode(&raster, Flatten(img, color.White)); err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", imgOpts, &raster)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, imgOpts, 0, "")
	return pdf.Output(w)
}
