package pixl

import "github.com/pkg/errors"

// Document owns the ordered layer stack and the editing cursor. Layer
// order is z-order: later layers are drawn on top. A document always has
// at least one layer after construction, and the cursor indices are kept
// in bounds by the setters, so the drawing engine and the compositor can
// read them without further checks.
type Document struct {
	cfg      Config
	layers   []*Layer
	curLayer int
	curFrame int
	nextID   int
	notifier Notifier
}

// NewDocument creates a document bootstrapped with a single default
// layer. A nil notifier falls back to NopNotifier.
func NewDocument(cfg Config, n Notifier) *Document {
	if n == nil {
		n = NopNotifier
	}
	d := &Document{cfg: cfg.withDefaults(), notifier: n}
	d.AddLayer("Background")
	return d
}

// Config returns the document configuration.
func (d *Document) Config() Config {
	return d.cfg
}

// Layers returns the layer stack in z-order, bottom to top.
func (d *Document) Layers() []*Layer {
	return d.layers
}

// Cursor returns the active layer and frame indices.
func (d *Document) Cursor() (layer, frame int) {
	return d.curLayer, d.curFrame
}

// AddLayer appends a new fully transparent, visible layer on top of the
// stack and moves the cursor to it.
func (d *Document) AddLayer(name string) *Layer {
	l := newLayer(d.nextID, name, d.cfg)
	d.nextID++
	d.layers = append(d.layers, l)
	d.curLayer = len(d.layers) - 1
	d.notifier.DataChanged()
	return l
}

// CurrentBuffer returns the frame buffer under the cursor.
func (d *Document) CurrentBuffer() (*Buffer, error) {
	if len(d.layers) == 0 {
		return nil, errors.Wrap(ErrInvalidCursor, "document has no layers")
	}
	return d.layers[d.curLayer].frames[d.curFrame], nil
}

// ReplaceCurrentBuffer stores a new buffer at the cursor position,
// discarding the previous one.
func (d *Document) ReplaceCurrentBuffer(b *Buffer) error {
	if len(d.layers) == 0 {
		return errors.Wrap(ErrInvalidCursor, "document has no layers")
	}
	d.layers[d.curLayer].frames[d.curFrame] = b
	return nil
}

// SetCursor moves the editing cursor. A negative index leaves the
// corresponding cursor field unchanged. Out of bounds indices are
// rejected: callers must clamp before invoking.
func (d *Document) SetCursor(layer, frame int) error {
	nl, nf := d.curLayer, d.curFrame

	if layer >= 0 {
		if layer >= len(d.layers) {
			return errors.Wrapf(ErrOutOfRange, "layer index %d", layer)
		}
		nl = layer
	}
	if frame >= 0 {
		if frame >= d.cfg.MaxFrames {
			return errors.Wrapf(ErrOutOfRange, "frame index %d", frame)
		}
		nf = frame
	}

	d.curLayer, d.curFrame = nl, nf
	d.notifier.RenderRequested()
	return nil
}

// SetLayerVisible toggles a layer's participation in compositing.
func (d *Document) SetLayerVisible(i int, visible bool) error {
	if i < 0 || i >= len(d.layers) {
		return errors.Wrapf(ErrOutOfRange, "layer index %d", i)
	}
	d.layers[i].visible = visible
	d.notifier.RenderRequested()
	return nil
}

// RenameLayer sets the display name of a layer.
func (d *Document) RenameLayer(i int, name string) error {
	if i < 0 || i >= len(d.layers) {
		return errors.Wrapf(ErrOutOfRange, "layer index %d", i)
	}
	d.layers[i].name = name
	d.notifier.DataChanged()
	return nil
}
