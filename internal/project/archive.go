package project

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ArchiveExt is the file extension of project archives.
const ArchiveExt = ".ddd"

const (
	manifestName = "project.json"
	rasterName   = "canvas.png"

	archiveVersion = 1
)

// manifest is the project.json entry of an archive.
type manifest struct {
	Version      int      `json:"version"`
	Project      Metadata `json:"project"`
	CanvasWidth  int      `json:"canvas_width"`
	CanvasHeight int      `json:"canvas_height"`
}

// WriteArchive writes m and img as a .ddd zip archive.
func WriteArchive(w io.Writer, m Metadata, img image.Image) error {
	zw := zip.NewWriter(w)

	b := img.Bounds()
	data, err := json.MarshalIndent(manifest{
		Version:      archiveVersion,
		Project:      m,
		CanvasWidth:  b.Dx(),
		CanvasHeight: b.Dy(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("project: encode manifest: %w", err)
	}
	f, err := zw.Create(manifestName)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}

	f, err = zw.Create(rasterName)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("project: encode raster: %w", err)
	}
	return zw.Close()
}

// ReadArchive reads an archive written by WriteArchive.
func ReadArchive(r io.ReaderAt, size int64) (Metadata, image.Image, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("project: open archive: %w", err)
	}
	return readArchive(zr)
}

func readArchive(zr *zip.Reader) (Metadata, image.Image, error) {
	var mf manifest
	if err := readEntry(zr, manifestName, func(rc io.Reader) error {
		return json.NewDecoder(rc).Decode(&mf)
	}); err != nil {
		return Metadata{}, nil, err
	}
	if mf.Version > archiveVersion {
		return Metadata{}, nil, fmt.Errorf("project: archive version %d is newer than supported %d", mf.Version, archiveVersion)
	}

	var img image.Image
	if err := readEntry(zr, rasterName, func(rc io.Reader) error {
		var err error
		img, err = png.Decode(rc)
		return err
	}); err != nil {
		return Metadata{}, nil, err
	}
	if b := img.Bounds(); b.Dx() != mf.CanvasWidth || b.Dy() != mf.CanvasHeight {
		return Metadata{}, nil, fmt.Errorf("project: raster is %dx%d, manifest says %dx%d",
			b.Dx(), b.Dy(), mf.CanvasWidth, mf.CanvasHeight)
	}

	m := mf.Project
	m.Saved = true
	return m, img, nil
}

func readEntry(zr *zip.Reader, name string, fn func(io.Reader) error) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("project: open %s: %w", name, err)
		}
		defer rc.Close()
		if err := fn(rc); err != nil {
			return fmt.Errorf("project: read %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s in archive", ErrNotFound, name)
}

// SaveArchive writes the archive to path and marks m saved.
func SaveArchive(path string, m *Metadata, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteArchive(file, *m, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	m.MarkSaved()
	return nil
}

// LoadArchive opens the archive at path.
func LoadArchive(path string) (Metadata, image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return Metadata{}, nil, err
	}
	return ReadArchive(f, st.Size())
}
