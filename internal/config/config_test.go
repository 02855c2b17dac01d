package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Drawing-master/Drawing-Master/internal/export"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

func TestLoadWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing-master", "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetInt(SectionHistory, "capacity", 0); got != 50 {
		t.Errorf("history.capacity = %d, want 50", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if disk.Section(SectionCanvas) == nil {
		t.Fatal("expected canvas section on disk")
	}
}

func TestLoadKeepsUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"canvas": {"width": 320}, "tools": {"default": "bucket"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Settings()
	if s.CanvasWidth != 320 || s.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d, want 320x600", s.CanvasWidth, s.CanvasHeight)
	}
	if s.Tool != tool.Fill {
		t.Errorf("Tool = %v, want fill", s.Tool)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Error("Load should report the parse error")
	}
	if cfg.GetInt(SectionCanvas, "width", 0) != 800 {
		t.Error("defaults not returned alongside the error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Set(SectionTools, "opacity", 0.5)
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if o := got.GetFloat(SectionTools, "opacity", 1); o != 0.5 {
		t.Errorf("opacity = %v, want 0.5", o)
	}
}

func TestGetters(t *testing.T) {
	cfg := Config{
		"s": map[string]interface{}{
			"n":   float64(7),
			"ns":  "12",
			"f":   "0.25",
			"str": "x",
			"bad": true,
		},
	}
	if got := cfg.GetInt("s", "n", 0); got != 7 {
		t.Errorf("GetInt(n) = %d", got)
	}
	if got := cfg.GetInt("s", "ns", 0); got != 12 {
		t.Errorf("GetInt(ns) = %d", got)
	}
	if got := cfg.GetFloat("s", "f", 0); got != 0.25 {
		t.Errorf("GetFloat(f) = %v", got)
	}
	if got := cfg.GetString("s", "str", ""); got != "x" {
		t.Errorf("GetString(str) = %q", got)
	}
	if got := cfg.GetInt("s", "bad", 3); got != 3 {
		t.Errorf("GetInt(bad) = %d, want default", got)
	}
	if got := cfg.GetString("missing", "k", "d"); got != "d" {
		t.Errorf("GetString on missing section = %q", got)
	}
}

func TestRegisterDefaultsKeepsExisting(t *testing.T) {
	cfg := Config{}
	cfg.Set("a", "k", "mine")
	cfg.RegisterDefaults("a", Section{"k": "default", "other": 1})
	if got := cfg.GetString("a", "k", ""); got != "mine" {
		t.Errorf("k = %q, want mine", got)
	}
	if got := cfg.GetInt("a", "other", 0); got != 1 {
		t.Errorf("other = %d, want 1", got)
	}
}

func TestSettingsFallbacks(t *testing.T) {
	cfg := Default()
	cfg.Set(SectionCanvas, "width", -4)
	cfg.Set(SectionCanvas, "background", "nope")
	cfg.Set(SectionHistory, "capacity", 0)
	cfg.Set(SectionTools, "default", "spray")
	cfg.Set(SectionTools, "stroke_width", 0)
	cfg.Set(SectionTools, "opacity", 3.0)
	cfg.Set(SectionExport, "format", "gif")
	cfg.Set(SectionExport, "jpeg_quality", 500)

	s := cfg.Settings()
	if s.CanvasWidth != 800 || s.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d", s.CanvasWidth, s.CanvasHeight)
	}
	if s.Background != pixel.White {
		t.Errorf("Background = %v", s.Background)
	}
	if s.HistoryCapacity != 50 || s.Tool != tool.Pencil || s.StrokeWidth != 2 || s.Opacity != 1 {
		t.Errorf("settings = %+v", s)
	}
	if s.ExportFormat != export.FormatPNG || s.JPEGQuality != export.DefaultJPEGQuality {
		t.Errorf("export = %v quality %d", s.ExportFormat, s.JPEGQuality)
	}
}

func TestSettingsTools(t *testing.T) {
	cfg := Default()
	cfg.Set(SectionTools, "default", "circle")
	cfg.Set(SectionTools, "color", "#ff000080")
	cfg.Set(SectionTools, "stroke_width", 6)
	cfg.Set(SectionTools, "opacity", 0.5)

	tc := cfg.Settings().Tools()
	if tc.Tool() != tool.Circle || tc.Width() != 6 || tc.Opacity() != 0.5 {
		t.Errorf("tools = %v width %d opacity %v", tc.Tool(), tc.Width(), tc.Opacity())
	}
	if tc.Color() != pixel.Red {
		t.Errorf("Color = %v, want opaque red", tc.Color())
	}
}

func TestResolveLibraryPath(t *testing.T) {
	s := Settings{LibraryPath: "/data/lib.db"}
	if p, err := s.ResolveLibraryPath(); err != nil || p != "/data/lib.db" {
		t.Errorf("ResolveLibraryPath = %q, %v", p, err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	p, err := Settings{}.ResolveLibraryPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p) != "projects.db" || filepath.Base(filepath.Dir(p)) != "drawing-master" {
		t.Errorf("ResolveLibraryPath = %q", p)
	}
}
