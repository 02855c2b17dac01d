package view

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(100, 50)
	v.Pan(12, -7)
	v.ZoomAt(400, 300, 3)

	p := pixel.Pt(33.5, 80)
	x, y := v.ToScreen(p)
	got := v.ToCanvas(x, y)
	if !near(got.X, p.X) || !near(got.Y, p.Y) {
		t.Errorf("ToCanvas(ToScreen(%v)) = %v", p, got)
	}
}

func TestViewportUnscaled(t *testing.T) {
	v := NewViewport(100, 50)
	if got := v.ToCanvas(110, 65); got != pixel.Pt(10, 15) {
		t.Errorf("ToCanvas = %v, want (10, 15)", got)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	v := NewViewport(100, 50)
	before := v.ToCanvas(420, 310)
	v.ZoomAt(420, 310, 2)
	after := v.ToCanvas(420, 310)
	if !near(before.X, after.X) || !near(before.Y, after.Y) {
		t.Errorf("point under cursor moved from %v to %v", before, after)
	}
	if v.Zoom <= 1 {
		t.Errorf("Zoom = %v, want > 1", v.Zoom)
	}
}

func TestZoomClamped(t *testing.T) {
	v := NewViewport(0, 0)
	for i := 0; i < 100; i++ {
		v.ZoomAt(0, 0, 5)
	}
	if v.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", v.Zoom, MaxZoom)
	}
	for i := 0; i < 100; i++ {
		v.ZoomAt(0, 0, -5)
	}
	if v.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", v.Zoom, MinZoom)
	}
}

func TestAreaEndsGesture(t *testing.T) {
	a := Area{Left: 100, Top: 50, Right: 900, Bottom: 700}
	tests := []struct {
		name     string
		x, y     float32
		released bool
		want     bool
	}{
		{"dragging inside", 400, 300, false, false},
		{"released inside", 400, 300, true, true},
		{"left over the toolbar", 90, 300, false, true},
		{"left over the top bar", 400, 50, false, true},
		{"left past the right edge", 900, 300, false, true},
		{"left past the bottom", 400, 701, false, true},
		{"released outside", 10, 10, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.EndsGesture(tt.x, tt.y, tt.released); got != tt.want {
				t.Errorf("EndsGesture(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.released, got, tt.want)
			}
		})
	}
}

func TestUpload(t *testing.T) {
	b := pixel.NewBuffer(2, 1)
	b.Set(0, 0, pixel.Color{R: 128, A: 128})
	b.Set(1, 0, pixel.Color{R: 10, G: 20, B: 30, A: 255})

	got := Upload(nil, b)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != (color.RGBA{R: 255, A: 128}) {
		t.Errorf("half red = %v, want straight red at 128", got[0])
	}
	if got[1] != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel = %v", got[1])
	}

	reused := Upload(got, b)
	if &reused[0] != &got[0] {
		t.Error("Upload did not reuse the destination")
	}
}

func TestPrompt(t *testing.T) {
	p := NewPrompt(editor.TextRequest{At: pixel.Pt(1, 2), Size: 14})
	for _, r := range "hé\x07llo" {
		p.Insert(r)
	}
	p.Backspace()
	if got := p.Text(); got != "héll" {
		t.Errorf("Text() = %q, want %q", got, "héll")
	}

	p = NewPrompt(editor.TextRequest{})
	p.Backspace()
	for i := 0; i < MaxPromptRunes+10; i++ {
		p.Insert('x')
	}
	if got := p.Text(); got != strings.Repeat("x", MaxPromptRunes) {
		t.Errorf("prompt grew to %d runes", len(got))
	}
}
