package pixl

import (
	"github.com/disintegration/imaging"

	"github.com/esimov/pixl/blend"
)

// Composite flattens the document at the given frame index into a single
// buffer. Every visible layer is source-over composited in z-order,
// bottom to top, directly into one shared output buffer. When onionSkin
// is enabled and the frame is not the first one, a translucent ghost of
// the previous frame is blended beneath the current frame stack first,
// so current-frame pixels always fully occlude it.
//
// Layer data is only read, never mutated; the returned buffer is owned
// by the caller.
func Composite(d *Document, frame int, onionSkin bool) *Buffer {
	cfg := d.Config()
	out := NewBuffer(cfg.Width, cfg.Height)
	if frame < 0 || frame >= cfg.MaxFrames {
		return out
	}

	op := blend.NewOp()
	acc := out.Image()

	if onionSkin && frame > 0 {
		for _, l := range d.Layers() {
			if !l.visible {
				continue
			}
			ghost := blend.Dim(l.frames[frame-1].Image(), cfg.OnionFactor)
			op.Draw(acc, ghost)
		}
	}

	for _, l := range d.Layers() {
		if !l.visible {
			continue
		}
		op.Draw(acc, l.frames[frame].Image())
	}
	return out
}

// DownscalePreview returns a nearest-neighbor resized copy of the buffer
// for thumbnail views. Nearest-neighbor sampling keeps the pixel edges
// sharp instead of blurring them together.
func DownscalePreview(b *Buffer, target int) *Buffer {
	if target <= 0 {
		target = 1
	}
	return FromImage(imaging.Resize(b.Image(), target, target, imaging.NearestNeighbor))
}
