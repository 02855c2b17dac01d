package config

import (
	"path/filepath"

	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/export"
	"github.com/Drawing-master/Drawing-Master/internal/history"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/surface"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// Settings is the typed view of a Config. Invalid entries are replaced by
// their defaults.
type Settings struct {
	CanvasWidth    int
	CanvasHeight   int
	Background     pixel.Color
	SnapshotBudget int

	HistoryCapacity int

	Tool        tool.Kind
	Color       pixel.Color
	StrokeWidth int
	Opacity     float64

	ExportFormat export.Format
	JPEGQuality  int
	ExportDir    string

	LibraryPath string
}

// Settings resolves c into typed values.
func (c Config) Settings() Settings {
	log := logging.Logger()
	s := Settings{
		CanvasWidth:     c.GetInt(SectionCanvas, "width", 800),
		CanvasHeight:    c.GetInt(SectionCanvas, "height", 600),
		Background:      pixel.White,
		SnapshotBudget:  c.GetInt(SectionCanvas, "snapshot_budget", 0),
		HistoryCapacity: c.GetInt(SectionHistory, "capacity", history.DefaultCapacity),
		Tool:            tool.Pencil,
		Color:           pixel.Black,
		StrokeWidth:     c.GetInt(SectionTools, "stroke_width", 2),
		Opacity:         c.GetFloat(SectionTools, "opacity", 1),
		ExportFormat:    export.FormatPNG,
		JPEGQuality:     c.GetInt(SectionExport, "jpeg_quality", export.DefaultJPEGQuality),
		ExportDir:       c.GetString(SectionExport, "dir", ""),
		LibraryPath:     c.GetString(SectionLibrary, "path", ""),
	}

	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		log.Warn("invalid canvas size, using 800x600", "width", s.CanvasWidth, "height", s.CanvasHeight)
		s.CanvasWidth, s.CanvasHeight = 800, 600
	}
	if bg, err := pixel.ParseHex(c.GetString(SectionCanvas, "background", "#ffffff")); err == nil {
		s.Background = bg
	} else {
		log.Warn("invalid background color", "err", err)
	}
	if s.SnapshotBudget < 0 {
		s.SnapshotBudget = 0
	}
	if s.HistoryCapacity < 1 {
		s.HistoryCapacity = history.DefaultCapacity
	}
	if k, ok := tool.Parse(c.GetString(SectionTools, "default", "pencil")); ok {
		s.Tool = k
	} else {
		log.Warn("unknown default tool", "tool", c.GetString(SectionTools, "default", ""))
	}
	if col, err := pixel.ParseHex(c.GetString(SectionTools, "color", "#000000")); err == nil {
		s.Color = col.WithAlpha(255)
	} else {
		log.Warn("invalid tool color", "err", err)
	}
	if s.StrokeWidth < 1 {
		s.StrokeWidth = 2
	}
	if !(s.Opacity >= 0 && s.Opacity <= 1) {
		s.Opacity = 1
	}
	if f, err := export.ParseFormat(c.GetString(SectionExport, "format", "png")); err == nil {
		s.ExportFormat = f
	} else {
		log.Warn("invalid export format", "err", err)
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		s.JPEGQuality = export.DefaultJPEGQuality
	}
	return s
}

// ResolveLibraryPath returns LibraryPath, or projects.db under the config
// root when it is empty.
func (s Settings) ResolveLibraryPath() (string, error) {
	if s.LibraryPath != "" {
		return s.LibraryPath, nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, libraryDB), nil
}

// Tools returns the initial tool settings.
func (s Settings) Tools() tool.Context {
	tc := tool.NewContext()
	tc.SetTool(s.Tool)
	tc.SetColor(s.Color)
	_ = tc.SetWidth(s.StrokeWidth)
	_ = tc.SetOpacity(s.Opacity)
	return tc
}

// SurfaceOptions returns the canvas options for s.
func (s Settings) SurfaceOptions() []surface.Option {
	return []surface.Option{
		surface.WithBackground(s.Background),
		surface.WithSnapshotBudget(s.SnapshotBudget),
	}
}

// EditorOptions returns the editor options for s.
func (s Settings) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithHistoryCapacity(s.HistoryCapacity),
		editor.WithTools(s.Tools()),
	}
}

// ExportOptions returns the encoder options for s.
func (s Settings) ExportOptions() []export.Option {
	return []export.Option{export.WithJPEGQuality(s.JPEGQuality)}
}
