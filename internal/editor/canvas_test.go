package editor_test

import (
	"testing"

	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/surface"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

var _ editor.Surface = (*surface.Canvas)(nil)

func canvasEditor(t *testing.T, w, h int) (*editor.Editor, *surface.Canvas) {
	t.Helper()
	c, err := surface.New(w, h)
	if err != nil {
		t.Fatalf("surface.New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	e, err := editor.New(c)
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	return e, c
}

func capture(t *testing.T, c *surface.Canvas) *pixel.Snapshot {
	t.Helper()
	s, err := c.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	return s
}

func TestPreviewDoesNotPersist(t *testing.T) {
	for _, k := range []tool.Kind{tool.Line, tool.Rectangle, tool.Circle} {
		t.Run(k.String(), func(t *testing.T) {
			dragged, dc := canvasEditor(t, 100, 100)
			dragged.SetTool(k)
			dragged.SetColor(pixel.Red)
			_ = dragged.GestureStart(pixel.Pt(10, 10))
			for _, p := range []pixel.Point{pixel.Pt(30, 30), pixel.Pt(60, 20), pixel.Pt(45, 70), pixel.Pt(90, 90)} {
				_ = dragged.GestureMove(p)
			}
			_ = dragged.GestureEnd(pixel.Pt(50, 40))

			direct, cc := canvasEditor(t, 100, 100)
			direct.SetTool(k)
			direct.SetColor(pixel.Red)
			_ = direct.GestureStart(pixel.Pt(10, 10))
			_ = direct.GestureEnd(pixel.Pt(50, 40))

			if !capture(t, dc).Equal(capture(t, cc)) {
				t.Error("intermediate previews left pixels on the canvas")
			}
			if !dragged.Snapshot().Equal(direct.Snapshot()) {
				t.Error("committed snapshots differ")
			}
		})
	}
}

func TestRectangleUndoRedoRoundTrip(t *testing.T) {
	e, c := canvasEditor(t, 64, 64)
	s0 := capture(t, c)

	e.SetTool(tool.Rectangle)
	e.SetColor(pixel.Blue)
	_ = e.GestureStart(pixel.Pt(8, 8))
	_ = e.GestureMove(pixel.Pt(40, 40))
	_ = e.GestureEnd(pixel.Pt(40, 40))
	s1 := capture(t, c)
	if s1.Equal(s0) {
		t.Fatal("rectangle left the canvas blank")
	}

	if _, err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if !capture(t, c).Equal(s0) {
		t.Error("undo did not restore the blank canvas")
	}
	if _, err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	if !capture(t, c).Equal(s1) {
		t.Error("redo did not restore the rectangle")
	}
}

func TestFillBlankCanvas(t *testing.T) {
	e, c := canvasEditor(t, 40, 30)
	e.SetTool(tool.Fill)
	e.SetColor(pixel.Red)

	_ = e.GestureStart(pixel.Pt(5, 5))
	_ = e.GestureEnd(pixel.Pt(5, 5))

	for _, p := range [][2]int{{0, 0}, {39, 0}, {0, 29}, {39, 29}, {20, 15}} {
		if got := c.Sample(p[0], p[1]); got != pixel.Red {
			t.Fatalf("Sample(%d, %d) = %v, want red", p[0], p[1], got)
		}
	}
	if _, n := e.HistoryPosition(); n != 2 {
		t.Errorf("history length = %d, want 2", n)
	}

	_ = e.GestureStart(pixel.Pt(5, 5))
	_ = e.GestureEnd(pixel.Pt(5, 5))
	if _, n := e.HistoryPosition(); n != 2 {
		t.Errorf("refilling with the same color recorded a state: %d", n)
	}
}

func TestEraserOnCanvas(t *testing.T) {
	e, c := canvasEditor(t, 40, 40)
	e.SetTool(tool.Eraser)
	_ = e.SetStrokeWidth(8)

	_ = e.GestureStart(pixel.Pt(5, 20))
	_ = e.GestureMove(pixel.Pt(35, 20))
	_ = e.GestureEnd(pixel.Pt(35, 20))

	if got := c.Sample(20, 20); got.A != 0 {
		t.Errorf("erased pixel = %v, want transparent", got)
	}
	if got := c.Sample(20, 2); got != pixel.White {
		t.Errorf("pixel outside the stroke = %v, want white", got)
	}
}

func TestEyedropperOnCanvas(t *testing.T) {
	e, _ := canvasEditor(t, 20, 20)
	e.SetTool(tool.Fill)
	e.SetColor(pixel.Green)
	_ = e.GestureStart(pixel.Pt(1, 1))
	_ = e.GestureEnd(pixel.Pt(1, 1))

	e.SetColor(pixel.Black)
	e.SetTool(tool.Eyedropper)
	_ = e.GestureStart(pixel.Pt(10, 10))
	_ = e.GestureEnd(pixel.Pt(10, 10))

	if e.Color() != pixel.Green {
		t.Errorf("Color() = %v, want green", e.Color())
	}
}

func TestTextOnCanvas(t *testing.T) {
	e, c := canvasEditor(t, 120, 60)
	e.SetTool(tool.Text)
	_ = e.SetStrokeWidth(10)
	before := capture(t, c)

	_ = e.GestureStart(pixel.Pt(5, 45))
	_ = e.GestureEnd(pixel.Pt(5, 45))
	if err := e.SubmitText("Hello"); err != nil {
		t.Fatal(err)
	}
	if capture(t, c).Equal(before) {
		t.Error("text left the canvas unchanged")
	}
	if _, n := e.HistoryPosition(); n != 2 {
		t.Errorf("history length = %d, want 2", n)
	}
}

func TestClosedCanvasLeavesHistory(t *testing.T) {
	c, err := surface.New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	e, err := editor.New(c)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Close()

	_ = e.GestureStart(pixel.Pt(1, 1))
	_ = e.GestureMove(pixel.Pt(8, 8))
	if err := e.GestureEnd(pixel.Pt(8, 8)); err == nil {
		t.Error("GestureEnd on a closed canvas should fail to record")
	}
	if _, n := e.HistoryPosition(); n != 1 {
		t.Errorf("history length = %d, want 1", n)
	}
}
