package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/Drawing-master/Drawing-Master/internal/config"
	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/export"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/pixel"
	"github.com/Drawing-master/Drawing-Master/internal/project"
	"github.com/Drawing-master/Drawing-Master/internal/surface"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
	"github.com/Drawing-master/Drawing-Master/internal/view"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	fontSize     = 8
	leftPanel    = 100
	rightPanel   = 200
	topBar       = 50
)

var canvasArea = view.Area{Left: leftPanel, Top: topBar, Right: screenWidth - rightPanel, Bottom: screenHeight}

// Panel actions
const (
	actionUndo = iota
	actionRedo
	actionClear
	actionSave
	actionExport
	actionLibrary
)

// Application state
type App struct {
	settings config.Settings
	meta     project.Metadata
	archive  string

	canvas *surface.Canvas
	editor *editor.Editor
	state  [2]int // history position and length at the last check

	// Canvas texture
	texture rl.Texture2D
	upload  []color.RGBA
	dirty   bool

	// View
	view      view.Viewport
	isPanning bool
	panStartX float32
	panStartY float32

	// Gesture
	isDrawing bool
	lastPos   pixel.Point

	// UI
	tools         []tool.Kind
	toolButtons   []Button
	colorPalette  []rl.Color
	sizeSlider    Slider
	opacitySlider Slider
	actions       []Button

	prompt *view.Prompt
	status string
}

// NewApp creates the canvas and editor. img, when not nil, becomes the
// initial drawing.
func NewApp(settings config.Settings, meta project.Metadata, archive string, img image.Image) (*App, error) {
	app := &App{
		settings: settings,
		meta:     meta,
		archive:  archive,
		view:     view.NewViewport(leftPanel, topBar),
		tools:    tool.Kinds(),
	}

	c, err := surface.New(settings.CanvasWidth, settings.CanvasHeight, settings.SurfaceOptions()...)
	if err != nil {
		return nil, err
	}
	if img != nil {
		if err := c.Load(img); err != nil {
			c.Close()
			return nil, err
		}
	}
	app.canvas = c

	opts := append(settings.EditorOptions(), editor.WithTextHandler(app.requestText))
	app.editor, err = editor.New(c, opts...)
	if err != nil {
		c.Close()
		return nil, err
	}
	pos, n := app.editor.HistoryPosition()
	app.state = [2]int{pos, n}

	app.loadTexture()

	// Tool buttons
	x := float32(10)
	y := float32(50)
	for i, k := range app.tools {
		name := k.String()
		app.toolButtons = append(app.toolButtons, Button{
			rect:    rl.Rectangle{X: x + float32(i%2)*40, Y: y + float32(i/2)*40, Width: 36, Height: 36},
			text:    strings.ToUpper(name[:1]),
			tooltip: strings.ToUpper(name),
		})
	}

	app.colorPalette = []rl.Color{
		rl.Black, rl.White, rl.Red, rl.Green, rl.Blue,
		rl.Yellow, rl.Orange, rl.Purple, rl.Pink, rl.Brown,
		rl.Gray, rl.DarkGray, rl.LightGray, rl.SkyBlue, rl.Magenta,
		{R: 255, G: 0, B: 128, A: 255}, {R: 128, G: 255, B: 0, A: 255}, {R: 0, G: 128, B: 255, A: 255},
	}

	app.sizeSlider = Slider{
		rect:  rl.Rectangle{X: 10, Y: 280, Width: 70, Height: 20},
		value: float32(app.editor.StrokeWidth()),
		min:   1,
		max:   50,
		label: "SIZE",
	}
	app.opacitySlider = Slider{
		rect:  rl.Rectangle{X: 10, Y: 335, Width: 70, Height: 20},
		value: float32(app.editor.Opacity()),
		min:   0,
		max:   1,
		label: "OPACITY",
	}

	labels := []string{"UNDO", "REDO", "CLEAR", "SAVE", "EXPORT", "LIBRARY"}
	for i, l := range labels {
		app.actions = append(app.actions, Button{
			rect: rl.Rectangle{
				X:      float32(screenWidth - rightPanel + 10 + (i%2)*95),
				Y:      float32(120 + (i/2)*40),
				Width:  85,
				Height: 30,
			},
			text: l,
		})
	}
	return app, nil
}

// loadTexture (re)creates the canvas texture at the canvas size.
func (app *App) loadTexture() {
	if app.texture.ID != 0 {
		rl.UnloadTexture(app.texture)
	}
	img := rl.GenImageColor(app.canvas.Width(), app.canvas.Height(), rl.Blank)
	app.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	app.dirty = true
}

// syncTexture uploads the canvas when it changed since the last frame.
func (app *App) syncTexture() {
	if !app.dirty {
		return
	}
	app.upload = view.Upload(app.upload, app.canvas.Buffer())
	rl.UpdateTexture(app.texture, app.upload)
	app.dirty = false
}

func (app *App) requestText(req editor.TextRequest) {
	app.prompt = view.NewPrompt(req)
}

// edited marks the texture stale and tracks unsaved changes.
func (app *App) edited() {
	app.dirty = true
	pos, n := app.editor.HistoryPosition()
	if s := [2]int{pos, n}; s != app.state {
		app.state = s
		app.meta.Touch()
	}
}

func (app *App) report(what string, err error) {
	if err != nil {
		app.status = fmt.Sprintf("%s FAILED: %v", strings.ToUpper(what), err)
		logging.Logger().Warn(what+" failed", "err", err)
		return
	}
	app.status = strings.ToUpper(what)
}

func (app *App) inCanvasArea(mouse rl.Vector2) bool {
	return canvasArea.Contains(mouse.X, mouse.Y)
}

// Update application
func (app *App) Update() {
	mousePos := rl.GetMousePosition()

	if app.prompt != nil {
		app.endGesture(mousePos)
		app.updatePrompt()
		return
	}

	app.updateShortcuts()

	// Handle space+drag panning
	if rl.IsKeyDown(rl.KeySpace) && !app.isDrawing {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.isPanning = true
			app.panStartX = mousePos.X - app.view.PanX
			app.panStartY = mousePos.Y - app.view.PanY
		}
	}
	if app.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.view.PanX = mousePos.X - app.panStartX
		app.view.PanY = mousePos.Y - app.panStartY
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || !rl.IsKeyDown(rl.KeySpace) {
		app.isPanning = false
	}
	if app.isPanning {
		return
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && app.inCanvasArea(mousePos) {
		app.view.ZoomAt(mousePos.X, mousePos.Y, wheel)
	}

	app.updatePanels(mousePos)
	app.updateGesture(mousePos)

	// Pan with middle mouse button
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		app.view.Pan(delta.X, delta.Y)
	}
}

func (app *App) updatePanels(mousePos rl.Vector2) {
	for i := range app.toolButtons {
		if app.toolButtons[i].clicked(mousePos) {
			app.editor.SetTool(app.tools[i])
		}
	}

	paletteY := float32(400)
	for i, c := range app.colorPalette {
		x := float32(10 + (i%3)*25)
		y := paletteY + float32(i/3)*25
		rect := rl.Rectangle{X: x, Y: y, Width: 20, Height: 20}
		if rl.CheckCollisionPointRec(mousePos, rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.editor.SetColor(pixel.FromColor(c))
		}
	}

	if app.sizeSlider.update(mousePos) {
		if err := app.editor.SetStrokeWidth(int(math.Round(float64(app.sizeSlider.value)))); err != nil {
			app.report("size", err)
		}
	}
	if app.opacitySlider.update(mousePos) {
		if err := app.editor.SetOpacity(float64(app.opacitySlider.value)); err != nil {
			app.report("opacity", err)
		}
	}

	for i := range app.actions {
		if app.actions[i].clicked(mousePos) {
			app.runAction(i)
		}
	}
}

func (app *App) updateGesture(mousePos rl.Vector2) {
	p := app.view.ToCanvas(mousePos.X, mousePos.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && app.inCanvasArea(mousePos) {
		app.isDrawing = true
		app.lastPos = p
		if err := app.editor.GestureStart(p); err != nil {
			app.report("draw", err)
		}
		app.edited()
	}
	if !app.isDrawing {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && p != app.lastPos {
		app.lastPos = p
		if err := app.editor.GestureMove(p); err != nil {
			app.report("draw", err)
		}
		app.dirty = true
	}
	app.endGesture(mousePos)
}

// endGesture finishes the gesture on release or when the pointer leaves
// the canvas area, including while the text prompt is open.
func (app *App) endGesture(mousePos rl.Vector2) {
	if !app.isDrawing || !canvasArea.EndsGesture(mousePos.X, mousePos.Y, rl.IsMouseButtonReleased(rl.MouseLeftButton)) {
		return
	}
	app.isDrawing = false
	if err := app.editor.GestureEnd(app.view.ToCanvas(mousePos.X, mousePos.Y)); err != nil {
		app.report("draw", err)
	}
	app.edited()
}

func (app *App) updatePrompt() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		app.prompt.Insert(rune(r))
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace):
		app.prompt.Backspace()
	case rl.IsKeyPressed(rl.KeyEnter):
		text := app.prompt.Text()
		app.prompt = nil
		if err := app.editor.SubmitText(text); err != nil {
			app.report("text", err)
		}
		app.edited()
	case rl.IsKeyPressed(rl.KeyEscape):
		app.prompt = nil
		app.editor.CancelText()
	}
}

func (app *App) updateShortcuts() {
	if !rl.IsKeyDown(rl.KeyLeftControl) && !rl.IsKeyDown(rl.KeyRightControl) {
		return
	}
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch {
	case rl.IsKeyPressed(rl.KeyZ) && shift, rl.IsKeyPressed(rl.KeyY):
		app.runAction(actionRedo)
	case rl.IsKeyPressed(rl.KeyZ):
		app.runAction(actionUndo)
	case rl.IsKeyPressed(rl.KeyS):
		app.runAction(actionSave)
	case rl.IsKeyPressed(rl.KeyE):
		app.runAction(actionExport)
	case rl.IsKeyPressed(rl.KeyL):
		app.runAction(actionLibrary)
	case rl.IsKeyPressed(rl.KeyO):
		app.report("open", app.openArchive(app.archive))
	case rl.IsKeyPressed(rl.KeyR):
		app.report("revert", app.openProject(app.meta.ID))
	}
}

func (app *App) runAction(a int) {
	switch a {
	case actionUndo:
		if ok, err := app.editor.Undo(); ok || err != nil {
			app.report("undo", err)
		}
	case actionRedo:
		if ok, err := app.editor.Redo(); ok || err != nil {
			app.report("redo", err)
		}
	case actionClear:
		app.report("clear", app.editor.Clear())
	case actionSave:
		app.report("save "+filepath.Base(app.archive), project.SaveArchive(app.archive, &app.meta, app.editor.Snapshot().Image()))
	case actionExport:
		path := filepath.Join(app.settings.ExportDir, export.Filename(app.meta.Name, app.settings.ExportFormat))
		app.report("export "+filepath.Base(path), app.exportTo(path))
	case actionLibrary:
		app.report("library save", app.saveToLibrary())
	}
	app.edited()
}

func (app *App) exportTo(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Encode(file, app.editor.Snapshot().Image(), app.settings.ExportFormat, app.settings.ExportOptions()...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (app *App) saveToLibrary() error {
	path, err := app.settings.ResolveLibraryPath()
	if err != nil {
		return err
	}
	lib, err := project.OpenLibrary(path)
	if err != nil {
		return err
	}
	defer lib.Close()
	return lib.Save(&app.meta, app.editor.Snapshot().Image())
}

// openArchive replaces the drawing with the archive at path.
func (app *App) openArchive(path string) error {
	meta, img, err := project.LoadArchive(path)
	if err != nil {
		return err
	}
	w, h := app.canvas.Width(), app.canvas.Height()
	if err := project.Apply(img, app.canvas, app.editor); err != nil {
		return err
	}
	app.replaced(meta, w, h)
	return nil
}

// openProject replaces the drawing with the library project id.
func (app *App) openProject(id uuid.UUID) error {
	path, err := app.settings.ResolveLibraryPath()
	if err != nil {
		return err
	}
	lib, err := project.OpenLibrary(path)
	if err != nil {
		return err
	}
	defer lib.Close()

	w, h := app.canvas.Width(), app.canvas.Height()
	meta, err := lib.Open(id, app.canvas, app.editor)
	if err != nil {
		return err
	}
	app.replaced(meta, w, h)
	return nil
}

// replaced adopts meta after the canvas content was swapped out. w and h
// are the canvas size before the swap.
func (app *App) replaced(meta project.Metadata, w, h int) {
	app.meta = meta
	app.isDrawing = false
	if app.canvas.Width() != w || app.canvas.Height() != h {
		app.loadTexture()
	}
	pos, n := app.editor.HistoryPosition()
	app.state = [2]int{pos, n}
	app.dirty = true
}

// Draw application
func (app *App) Draw() {
	app.syncTexture()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 40, G: 40, B: 40, A: 255})

	mousePos := rl.GetMousePosition()

	// Left toolbar
	rl.DrawRectangle(0, 0, leftPanel, screenHeight, panelColor)
	rl.DrawText("DRAWING MASTER", 10, 10, fontSize, rl.White)
	rl.DrawText("TOOLS", 10, 35, fontSize, rl.LightGray)
	for i := range app.toolButtons {
		app.toolButtons[i].selected = app.tools[i] == app.editor.Tool()
		app.toolButtons[i].draw(mousePos)
	}

	app.sizeSlider.draw("%.0f", float32(app.editor.StrokeWidth()))
	app.opacitySlider.draw("%.0f%%", float32(app.editor.Opacity()*100))

	// Color palette
	current := app.editor.Color()
	rl.DrawText("COLORS", 10, 385, fontSize, rl.LightGray)
	paletteY := float32(400)
	for i, c := range app.colorPalette {
		x := float32(10 + (i%3)*25)
		y := paletteY + float32(i/3)*25
		rect := rl.Rectangle{X: x, Y: y, Width: 20, Height: 20}
		rl.DrawRectangleRec(rect, c)
		if pixel.FromColor(c) == current {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rect, 1, rl.Color{R: 70, G: 70, B: 70, A: 255})
		}
	}
	rl.DrawRectangle(10, 620, 40, 30, rl.Color{R: current.R, G: current.G, B: current.B, A: uint8(math.Round(app.editor.Opacity() * 255))})
	rl.DrawRectangleLines(10, 620, 40, 30, rl.White)

	app.drawRightPanel(mousePos)

	// Top bar
	rl.DrawRectangle(leftPanel, 0, screenWidth-leftPanel-rightPanel, topBar, rl.Color{R: 60, G: 60, B: 60, A: 255})
	panStatus := ""
	if app.isPanning {
		panStatus = " | PANNING"
	}
	info := fmt.Sprintf("ZOOM: %.0f%% | SIZE: %dX%d | TOOL: %s%s",
		app.view.Zoom*100, app.canvas.Width(), app.canvas.Height(), strings.ToUpper(app.editor.Tool().String()), panStatus)
	rl.DrawText(info, leftPanel+10, 12, fontSize, rl.White)
	rl.DrawText(app.status, leftPanel+10, 30, fontSize, rl.Yellow)

	app.drawCanvas(mousePos)

	if app.prompt != nil {
		app.drawPrompt()
	}

	rl.EndDrawing()
}

func (app *App) drawRightPanel(mousePos rl.Vector2) {
	rl.DrawRectangle(screenWidth-rightPanel, 0, rightPanel, screenHeight, panelColor)
	rl.DrawText("PROJECT", screenWidth-rightPanel+10, 10, fontSize, rl.White)

	name := app.meta.Name
	if !app.meta.Saved {
		name += " *"
	}
	rl.DrawText(strings.ToUpper(name), screenWidth-rightPanel+10, 30, fontSize, rl.LightGray)

	pos, n := app.editor.HistoryPosition()
	rl.DrawText(fmt.Sprintf("HISTORY: %d / %d", pos, n), screenWidth-rightPanel+10, 60, fontSize, rl.LightGray)

	// History gauge
	gauge := rl.Rectangle{X: screenWidth - rightPanel + 10, Y: 80, Width: rightPanel - 20, Height: 10}
	rl.DrawRectangleRec(gauge, rl.Color{R: 60, G: 60, B: 60, A: 255})
	if n > 0 {
		rl.DrawRectangle(int32(gauge.X), int32(gauge.Y), int32(gauge.Width*float32(pos)/float32(n)), int32(gauge.Height), selectedColor)
	}

	for i := range app.actions {
		app.actions[i].draw(mousePos)
	}

	help := []string{
		"CTRL+Z  UNDO",
		"CTRL+Y  REDO",
		"CTRL+S  SAVE .DDD",
		"CTRL+O  REOPEN .DDD",
		"CTRL+E  EXPORT",
		"CTRL+L  SAVE TO LIBRARY",
		"CTRL+R  REVERT TO LIBRARY",
		"SPACE   PAN",
	}
	for i, h := range help {
		rl.DrawText(h, screenWidth-rightPanel+10, int32(260+i*14), fontSize, rl.Gray)
	}
}

func (app *App) drawCanvas(mousePos rl.Vector2) {
	rl.BeginScissorMode(leftPanel, topBar, screenWidth-leftPanel-rightPanel, screenHeight-topBar)

	// Checkerboard shows through erased pixels
	tileSize := int32(16 * app.view.Zoom)
	if tileSize < 4 {
		tileSize = 4
	}
	offsetX := int32(app.view.PanX) % (tileSize * 2)
	offsetY := int32(app.view.PanY) % (tileSize * 2)
	for y := int32(-2); y < screenHeight/tileSize+2; y++ {
		for x := int32(-2); x < screenWidth/tileSize+2; x++ {
			if (x+y)%2 == 0 {
				rl.DrawRectangle(leftPanel+x*tileSize+offsetX, topBar+y*tileSize+offsetY,
					tileSize, tileSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
			}
		}
	}

	w, h := float32(app.canvas.Width()), float32(app.canvas.Height())
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: w, Height: h}
	dstRect := rl.Rectangle{
		X:      leftPanel + app.view.PanX,
		Y:      topBar + app.view.PanY,
		Width:  w * app.view.Zoom,
		Height: h * app.view.Zoom,
	}
	rl.DrawTexturePro(app.texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dstRect, 2, rl.Color{R: 100, G: 100, B: 100, A: 255})

	// Cursor
	if app.inCanvasArea(mousePos) && !app.isPanning {
		p := app.view.ToCanvas(mousePos.X, mousePos.Y)
		x, y := p.Pixel()
		if x >= 0 && x < app.canvas.Width() && y >= 0 && y < app.canvas.Height() {
			size := float32(app.editor.StrokeWidth()) * app.view.Zoom
			switch app.editor.Tool() {
			case tool.Pencil:
				rl.DrawRectangleLines(int32(mousePos.X-size/2), int32(mousePos.Y-size/2), int32(size), int32(size), rl.White)
			case tool.Brush, tool.Eraser:
				rl.DrawCircleLines(int32(mousePos.X), int32(mousePos.Y), size/2, rl.White)
			case tool.Eyedropper:
				rl.DrawRectangleLines(int32(mousePos.X-5), int32(mousePos.Y-5), 10, 10, rl.White)
			}
		}
	}

	if app.isPanning {
		rl.DrawText("HAND", int32(mousePos.X+10), int32(mousePos.Y-10), fontSize, rl.Yellow)
	}
	if rl.IsKeyDown(rl.KeySpace) && !app.isPanning {
		rl.DrawText("CLICK AND DRAG TO PAN", int32(mousePos.X+10), int32(mousePos.Y+10), fontSize, rl.Yellow)
	}

	rl.EndScissorMode()
}

func (app *App) drawPrompt() {
	x, y := app.view.ToScreen(app.prompt.Request.At)
	box := rl.Rectangle{X: x, Y: y - 40, Width: 260, Height: 36}
	rl.DrawRectangleRec(box, rl.Color{R: 30, G: 30, B: 30, A: 230})
	rl.DrawRectangleLinesEx(box, 1, rl.Yellow)
	rl.DrawText("TEXT (ENTER / ESC)", int32(box.X+6), int32(box.Y+4), fontSize, rl.LightGray)
	rl.DrawText(app.prompt.Text()+"_", int32(box.X+6), int32(box.Y+18), 10, rl.White)
}

// Close releases the texture and canvas.
func (app *App) Close() {
	rl.UnloadTexture(app.texture)
	if err := app.canvas.Close(); err != nil {
		logging.Logger().Warn("close canvas", "err", err)
	}
}

// archivePath is where a drawing named name is saved by default.
func archivePath(s config.Settings, name string) string {
	base := strings.TrimSuffix(export.Filename(name, export.FormatPNG), export.FormatPNG.Ext())
	return filepath.Join(s.ExportDir, base+project.ArchiveExt)
}

func main() {
	var (
		configPath = flag.String("config", "", "config file (default: user config dir)")
		open       = flag.String("open", "", "project archive to open (.ddd)")
		projectID  = flag.String("project", "", "library project id to open")
		name       = flag.String("name", "", "project name for a new drawing")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logging.SetLogger(logging.New(os.Stderr, *verbose))
	log := logging.Logger()

	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		log.Warn("config", "err", err)
	}
	settings := cfg.Settings()

	if *open != "" && *projectID != "" {
		fmt.Fprintln(os.Stderr, "drawing-master: -open and -project are exclusive")
		os.Exit(2)
	}
	var id uuid.UUID
	if *projectID != "" {
		if id, err = project.ParseID(*projectID); err != nil {
			fmt.Fprintf(os.Stderr, "drawing-master: %v\n", err)
			os.Exit(2)
		}
	}

	meta := project.New(*name)
	archive := *open
	var img image.Image
	if archive != "" {
		meta, img, err = project.LoadArchive(archive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "drawing-master: %v\n", err)
			os.Exit(1)
		}
	} else {
		archive = archivePath(settings, meta.Name)
	}

	rl.InitWindow(screenWidth, screenHeight, "Drawing Master")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape cancels text input

	app, err := NewApp(settings, meta, archive, img)
	if err != nil {
		rl.CloseWindow()
		fmt.Fprintf(os.Stderr, "drawing-master: %v\n", err)
		os.Exit(1)
	}
	if id != uuid.Nil {
		if err := app.openProject(id); err != nil {
			app.Close()
			rl.CloseWindow()
			fmt.Fprintf(os.Stderr, "drawing-master: %v\n", err)
			os.Exit(1)
		}
		app.archive = archivePath(settings, app.meta.Name)
	}

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	app.Close()
	rl.CloseWindow()
}
