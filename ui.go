package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	panelColor    = rl.Color{R: 50, G: 50, B: 50, A: 255}
	buttonColor   = rl.Color{R: 70, G: 70, B: 70, A: 255}
	hoverColor    = rl.Color{R: 80, G: 80, B: 80, A: 255}
	selectedColor = rl.Color{R: 100, G: 100, B: 150, A: 255}
	borderColor   = rl.Color{R: 90, G: 90, B: 90, A: 255}
)

// Button is a clickable rectangle with a label.
type Button struct {
	rect     rl.Rectangle
	text     string
	tooltip  string
	hover    bool
	selected bool
}

// clicked updates the hover state and reports a left click on b.
func (b *Button) clicked(mouse rl.Vector2) bool {
	b.hover = rl.CheckCollisionPointRec(mouse, b.rect)
	return b.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) draw(mouse rl.Vector2) {
	col := buttonColor
	if b.selected {
		col = selectedColor
	} else if b.hover {
		col = hoverColor
	}
	rl.DrawRectangleRec(b.rect, col)
	rl.DrawRectangleLinesEx(b.rect, 1, borderColor)

	textW := rl.MeasureText(b.text, fontSize)
	textX := int32(b.rect.X + b.rect.Width/2 - float32(textW)/2)
	textY := int32(b.rect.Y + b.rect.Height/2 - 4)
	rl.DrawText(b.text, textX, textY, fontSize, rl.White)

	if b.hover && b.tooltip != "" {
		rl.DrawText(b.tooltip, int32(mouse.X+10), int32(mouse.Y), fontSize, rl.Yellow)
	}
}

// Slider is a horizontal value picker.
type Slider struct {
	rect  rl.Rectangle
	value float32
	min   float32
	max   float32
	label string
}

// update moves the slider while the button is held over it and reports
// whether the value changed.
func (s *Slider) update(mouse rl.Vector2) bool {
	if !rl.CheckCollisionPointRec(mouse, s.rect) || !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return false
	}
	relX := mouse.X - s.rect.X
	v := clamp(s.min+(relX/s.rect.Width)*(s.max-s.min), s.min, s.max)
	changed := v != s.value
	s.value = v
	return changed
}

func (s *Slider) draw(format string, shown float32) {
	rl.DrawText(s.label, int32(s.rect.X), int32(s.rect.Y-12), fontSize, rl.LightGray)
	rl.DrawRectangleRec(s.rect, rl.Color{R: 60, G: 60, B: 60, A: 255})
	pos := s.rect.X + (s.value-s.min)/(s.max-s.min)*s.rect.Width
	rl.DrawRectangle(int32(pos-2), int32(s.rect.Y), 4, int32(s.rect.Height), rl.White)
	rl.DrawText(fmt.Sprintf(format, shown), int32(s.rect.X), int32(s.rect.Y+25), fontSize, rl.White)
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
