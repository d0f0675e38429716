package pixl

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	xdraw "golang.org/x/image/draw"

	"github.com/esimov/pixl/utils"
)

const (
	canvasMargin = 20
	previewSize  = 96
	defaultZoom  = 16
	playbackRate = 8 // playback frames per second
)

var (
	windowBkg  = color.NRGBA{R: 40, G: 40, B: 40, A: 0xff}
	checkLight = color.NRGBA{R: 150, G: 150, B: 150, A: 0xff}
	checkDark  = color.NRGBA{R: 100, G: 100, B: 100, A: 0xff}
)

// Gui is the Gio presentation layer of the editor. It owns a document
// and a drawing engine, maps pointer events to grid coordinates, and
// repaints the composite whenever the core reports a stale display.
//
// Keyboard bindings: P pencil, E eraser, B bucket, O onion skin,
// N new layer, V layer visibility, arrows move the cursor, space
// toggles playback, ESC closes the window.
type Gui struct {
	doc    *Document
	engine *Engine

	zoom      int
	onionSkin bool
	playing   bool
	lastTick  time.Time

	screen *image.RGBA
	stale  bool
}

// NewGui creates the editor window state and wires a new document and
// drawing engine to it. The Gui itself is the notification boundary the
// core signals through.
func NewGui(cfg Config) *Gui {
	g := &Gui{zoom: defaultZoom, stale: true}
	g.doc = NewDocument(cfg, g)
	g.engine = NewEngine(g.doc, g)
	return g
}

// Document returns the document the editor operates on.
func (g *Gui) Document() *Document {
	return g.doc
}

// Engine returns the drawing engine the editor forwards pointer input to.
func (g *Gui) Engine() *Engine {
	return g.engine
}

// DataChanged implements the Notifier interface. The next frame rebuilds
// the presented screen image.
func (g *Gui) DataChanged() {
	g.stale = true
}

// RenderRequested implements the Notifier interface.
func (g *Gui) RenderRequested() {
	g.stale = true
}

// Run opens the editor window and drives the Gio event loop until the
// window is closed or ESC is pressed. It has to run on a goroutine other
// than the one executing app.Main.
func (g *Gui) Run() error {
	cfg := g.doc.Config()
	w := app.NewWindow(
		app.Title("pixl"),
		app.Size(
			unit.Px(float32(cfg.Width*g.zoom+previewSize+3*canvasMargin)),
			unit.Px(float32(cfg.Height*g.zoom+2*canvasMargin)),
		),
	)
	g.updateTitle(w)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.tick(w)
			g.pointerEvents(gtx)
			if g.stale || g.screen == nil || !g.screen.Bounds().Size().Eq(e.Size) {
				g.render(e.Size)
			}
			g.frame(gtx, e.Size)
			e.Frame(gtx.Ops)
		case key.Event:
			g.handleKey(w, e)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// frame paints the rendered screen image and registers the pointer
// input area covering the window.
func (g *Gui) frame(gtx layout.Context, size image.Point) {
	paint.Fill(gtx.Ops, windowBkg)

	src := paint.NewImageOp(g.screen)
	src.Add(gtx.Ops)
	widget.Image{
		Src:   src,
		Scale: 1 / float32(gtx.Px(unit.Dp(1))),
	}.Layout(gtx)

	st := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   g,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	st.Pop()
}

// pointerEvents forwards the queued pointer events to the drawing
// engine. Engine errors are unreachable while the bootstrap layer
// invariant holds, so they are discarded here.
func (g *Gui) pointerEvents(gtx layout.Context) {
	for _, ev := range gtx.Events(g) {
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		gx, gy := g.gridPos(pe.Position)
		switch pe.Type {
		case pointer.Press:
			_ = g.engine.PointerDown(gx, gy)
		case pointer.Drag:
			_ = g.engine.PointerMove(gx, gy)
		case pointer.Release, pointer.Cancel:
			g.engine.PointerUp()
		}
	}
}

// gridPos maps a window position to grid coordinates. Positions outside
// the canvas map to out of range cells, which the buffer write path
// tolerates by contract.
func (g *Gui) gridPos(p f32.Point) (int, int) {
	gx := int(math.Floor(float64(p.X-canvasMargin) / float64(g.zoom)))
	gy := int(math.Floor(float64(p.Y-canvasMargin) / float64(g.zoom)))
	return gx, gy
}

// handleKey dispatches the keyboard bindings.
func (g *Gui) handleKey(w *app.Window, e key.Event) {
	if e.State != key.Press {
		return
	}

	switch e.Name {
	case key.NameEscape:
		w.Close()
	case "P":
		g.engine.SetTool(ToolPencil)
	case "E":
		g.engine.SetTool(ToolEraser)
	case "B":
		g.engine.SetTool(ToolBucket)
	case "O":
		g.onionSkin = !g.onionSkin
		g.stale = true
	case "N":
		g.doc.AddLayer(fmt.Sprintf("Layer %d", len(g.doc.Layers())))
	case "V":
		l, _ := g.doc.Cursor()
		_ = g.doc.SetLayerVisible(l, !g.doc.Layers()[l].Visible())
	case key.NameSpace:
		g.playing = !g.playing
		g.lastTick = time.Now()
	case key.NameLeftArrow:
		g.shiftFrame(-1)
	case key.NameRightArrow:
		g.shiftFrame(1)
	case key.NameDownArrow:
		g.shiftLayer(-1)
	case key.NameUpArrow:
		g.shiftLayer(1)
	default:
		return
	}

	g.updateTitle(w)
	w.Invalidate()
}

// shiftFrame moves the frame cursor by delta, clamped to the timeline.
func (g *Gui) shiftFrame(delta int) {
	_, f := g.doc.Cursor()
	f = utils.Min(utils.Max(f+delta, 0), g.doc.Config().MaxFrames-1)
	_ = g.doc.SetCursor(-1, f)
}

// shiftLayer moves the layer cursor by delta, clamped to the stack.
func (g *Gui) shiftLayer(delta int) {
	l, _ := g.doc.Cursor()
	l = utils.Min(utils.Max(l+delta, 0), len(g.doc.Layers())-1)
	_ = g.doc.SetCursor(l, -1)
}

// tick advances the frame cursor while playback is active. Playback is
// purely a presentation concern: it drives the same cursor the timeline
// keys do and recomposites through the regular notification path.
func (g *Gui) tick(w *app.Window) {
	if !g.playing {
		return
	}
	if time.Since(g.lastTick) >= time.Second/playbackRate {
		g.lastTick = time.Now()
		_, f := g.doc.Cursor()
		_ = g.doc.SetCursor(-1, (f+1)%g.doc.Config().MaxFrames)
	}
	w.Invalidate()
}

// updateTitle mirrors the editor state in the window title.
func (g *Gui) updateTitle(w *app.Window) {
	l, f := g.doc.Cursor()
	onion := "off"
	if g.onionSkin {
		onion = "on"
	}
	w.Option(app.Title(fmt.Sprintf("pixl | %s | layer %d | frame %d/%d | onion %s",
		g.engine.Tool(), l+1, f+1, g.doc.Config().MaxFrames, onion)))
}

// render rebuilds the presented screen image: a checkerboard backdrop,
// the composite upscaled to the configured zoom with nearest-neighbor
// sampling, and a downscaled thumbnail preview next to the canvas.
func (g *Gui) render(size image.Point) {
	_, frame := g.doc.Cursor()
	comp := Composite(g.doc, frame, g.onionSkin)

	if g.screen == nil || !g.screen.Bounds().Size().Eq(size) {
		g.screen = image.NewRGBA(image.Rectangle{Max: size})
	}
	draw.Draw(g.screen, g.screen.Bounds(), &image.Uniform{windowBkg}, image.Point{}, draw.Src)

	cfg := g.doc.Config()
	canvas := image.Rect(
		canvasMargin,
		canvasMargin,
		canvasMargin+cfg.Width*g.zoom,
		canvasMargin+cfg.Height*g.zoom,
	)

	// Checkerboard backdrop so transparent pixels stay readable.
	tile := utils.Max(g.zoom/2, 1)
	for y := 0; y < canvas.Dy(); y += tile {
		for x := 0; x < canvas.Dx(); x += tile {
			c := checkLight
			if (x/tile+y/tile)%2 == 1 {
				c = checkDark
			}
			r := image.Rect(canvas.Min.X+x, canvas.Min.Y+y, canvas.Min.X+x+tile, canvas.Min.Y+y+tile)
			draw.Draw(g.screen, r.Intersect(canvas), &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}

	xdraw.NearestNeighbor.Scale(g.screen, canvas, comp.Image(), comp.Image().Bounds(), xdraw.Over, nil)

	thumb := DownscalePreview(comp, previewSize)
	pr := image.Rect(
		canvas.Max.X+canvasMargin,
		canvasMargin,
		canvas.Max.X+canvasMargin+previewSize,
		canvasMargin+previewSize,
	)
	draw.Draw(g.screen, pr, &image.Uniform{checkDark}, image.Point{}, draw.Src)
	draw.Draw(g.screen, pr, thumb.Image(), image.Point{}, draw.Over)

	g.stale = false
}
