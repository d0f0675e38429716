package pixl

import (
	"image"
	"image/color"

	"github.com/esimov/pixl/utils"
)

// Tool selects the active drawing algorithm.
type Tool int

// The available drawing tools.
const (
	ToolPencil Tool = iota
	ToolEraser
	ToolBucket
)

// String returns the display name of the tool.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	case ToolBucket:
		return "bucket"
	}
	return "unknown"
}

// Engine translates pointer gestures in grid coordinates into buffer
// mutations on the document's current frame. The gesture state (drawing
// flag and last sampled position) is ephemeral and reset at the end of
// every gesture.
type Engine struct {
	doc      *Document
	notifier Notifier

	tool  Tool
	color string

	drawing bool
	last    image.Point
}

// NewEngine creates a drawing engine operating on the given document.
// A nil notifier falls back to NopNotifier. The initial tool is the
// pencil with an opaque black primary color.
func NewEngine(doc *Document, n Notifier) *Engine {
	if n == nil {
		n = NopNotifier
	}
	return &Engine{doc: doc, notifier: n, color: "#000000"}
}

// SetTool selects the active drawing tool.
func (e *Engine) SetTool(t Tool) {
	e.tool = t
}

// Tool returns the active drawing tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// SetColor sets the primary color as a hex string. The string is
// resolved at plot time through ParseHex, so an invalid value degrades
// to opaque black rather than failing.
func (e *Engine) SetColor(hex string) {
	e.color = hex
}

// Color returns the primary color hex string.
func (e *Engine) Color() string {
	return e.color
}

// paintColor resolves the color the active tool paints with: fully
// transparent for the eraser, the primary color otherwise.
func (e *Engine) paintColor() color.NRGBA {
	if e.tool == ToolEraser {
		return color.NRGBA{}
	}
	return ParseHex(e.color)
}

// PointerDown starts a pointer gesture at the given grid position. The
// bucket tool performs a single-shot flood fill and ends the gesture
// immediately; the other tools plot one pixel and keep the gesture open
// for subsequent move samples.
func (e *Engine) PointerDown(x, y int) error {
	buf, err := e.doc.CurrentBuffer()
	if err != nil {
		return err
	}

	if e.tool == ToolBucket {
		if e.fill(buf, x, y) {
			e.notifier.RenderRequested()
		}
		return nil
	}

	buf.Set(x, y, e.paintColor())
	e.drawing = true
	e.last = image.Pt(x, y)
	e.notifier.RenderRequested()
	return nil
}

// PointerMove extends an open gesture to the given grid position,
// drawing a continuous line from the previous pointer sample so sparse
// samples never leave gaps in the stroke. Without an open gesture the
// call is a no-op.
func (e *Engine) PointerMove(x, y int) error {
	if !e.drawing {
		return nil
	}
	buf, err := e.doc.CurrentBuffer()
	if err != nil {
		return err
	}

	e.line(buf, e.last.X, e.last.Y, x, y)
	e.last = image.Pt(x, y)
	e.notifier.RenderRequested()
	return nil
}

// PointerUp ends the gesture and clears the gesture state. No further
// mutation happens.
func (e *Engine) PointerUp() {
	e.drawing = false
	e.last = image.Point{}
}

// line plots every grid cell between the two endpoints, both inclusive,
// using the integer Bresenham algorithm. The endpoints are brought into
// canonical order first so that a stroke and its reverse always trace
// the identical cell set.
func (e *Engine) line(buf *Buffer, x0, y0, x1, y1 int) {
	c := e.paintColor()

	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := utils.Abs(x1 - x0)
	dy := utils.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		buf.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// fill performs an iterative 4-connected flood fill seeded at (x, y) and
// reports whether any pixel changed. The target color is captured before
// any mutation; filling a region that already has the fill color is a
// no-op. The work stack is bounded by the grid size since the color
// match guard fills each cell at most once.
func (e *Engine) fill(buf *Buffer, x, y int) bool {
	target, err := buf.At(x, y)
	if err != nil {
		return false
	}
	c := e.paintColor()
	if target == c {
		return false
	}

	stack := []image.Point{image.Pt(x, y)}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur, err := buf.At(p.X, p.Y)
		if err != nil || cur != target {
			continue
		}
		buf.Set(p.X, p.Y, c)

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}
	return true
}
