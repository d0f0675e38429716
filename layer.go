package pixl

import "github.com/pkg/errors"

// Layer is a named, independently visible stack of buffers, one per
// timeline slot. Layers are owned exclusively by their document and are
// created through Document.AddLayer.
type Layer struct {
	id      int
	name    string
	visible bool
	frames  []*Buffer
}

// newLayer creates a layer with every frame slot initialized to a fully
// transparent buffer.
func newLayer(id int, name string, cfg Config) *Layer {
	frames := make([]*Buffer, cfg.MaxFrames)
	for i := range frames {
		frames[i] = NewBuffer(cfg.Width, cfg.Height)
	}
	return &Layer{id: id, name: name, visible: true, frames: frames}
}

// ID returns the unique, immutable layer id. Ids are document scoped.
func (l *Layer) ID() int {
	return l.id
}

// Name returns the display name of the layer.
func (l *Layer) Name() string {
	return l.name
}

// Visible reports whether the layer takes part in compositing.
func (l *Layer) Visible() bool {
	return l.visible
}

// Frames returns the number of timeline slots.
func (l *Layer) Frames() int {
	return len(l.frames)
}

// Frame returns the buffer at the given timeline slot.
func (l *Layer) Frame(i int) (*Buffer, error) {
	if i < 0 || i >= len(l.frames) {
		return nil, errors.Wrapf(ErrOutOfRange, "frame index %d", i)
	}
	return l.frames[i], nil
}
