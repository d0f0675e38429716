package pixl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func pixAt(t *testing.T, b *Buffer, x, y int) color.NRGBA {
	t.Helper()
	c, err := b.At(x, y)
	assert.NoError(t, err)
	return c
}

func TestComposite_LayerOrder(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	bottom, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	bottom.Set(1, 1, red)
	bottom.Set(2, 1, red)

	d.AddLayer("Top")
	top, err := d.Layers()[1].Frame(0)
	assert.NoError(err)
	top.Set(1, 1, blue)

	out := Composite(d, 0, false)
	assert.Equal(blue, pixAt(t, out, 1, 1))
	assert.Equal(red, pixAt(t, out, 2, 1))
	assert.Equal(color.NRGBA{}, pixAt(t, out, 0, 0))
}

func TestComposite_SkipsHiddenLayers(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	bottom, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	bottom.Set(1, 1, red)

	d.AddLayer("Top")
	top, err := d.Layers()[1].Frame(0)
	assert.NoError(err)
	top.Set(1, 1, blue)

	assert.NoError(d.SetLayerVisible(1, false))
	out := Composite(d, 0, false)
	assert.Equal(red, pixAt(t, out, 1, 1))
}

func TestComposite_OnionSkinGhost(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	prev, err := d.Layers()[0].Frame(1)
	assert.NoError(err)
	prev.Set(2, 2, red)

	out := Composite(d, 2, true)

	// Opaque red dimmed by the default 0.3 factor.
	assert.Equal(color.NRGBA{R: 255, A: 76}, pixAt(t, out, 2, 2))
}

func TestComposite_CurrentFrameOccludesGhost(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	prev, err := d.Layers()[0].Frame(1)
	assert.NoError(err)
	prev.Set(2, 2, red)

	cur, err := d.Layers()[0].Frame(2)
	assert.NoError(err)
	cur.Set(2, 2, green)

	out := Composite(d, 2, true)
	assert.Equal(green, pixAt(t, out, 2, 2))
}

func TestComposite_NoGhostOnFirstFrame(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	cur, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	cur.Set(3, 3, red)

	with := Composite(d, 0, true)
	without := Composite(d, 0, false)
	assert.EqualValues(without.Pix(), with.Pix())
}

func TestComposite_OnionSkinDisabled(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	prev, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	prev.Set(2, 2, red)

	out := Composite(d, 1, false)
	assert.Equal(color.NRGBA{}, pixAt(t, out, 2, 2))
}

func TestComposite_DoesNotMutateLayers(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	prev, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	prev.Set(2, 2, red)
	cur, err := d.Layers()[0].Frame(1)
	assert.NoError(err)
	cur.Set(4, 4, blue)

	prevSnap := append([]uint8(nil), prev.Pix()...)
	curSnap := append([]uint8(nil), cur.Pix()...)

	_ = Composite(d, 1, true)

	assert.EqualValues(prevSnap, prev.Pix())
	assert.EqualValues(curSnap, cur.Pix())
}

func TestComposite_FrameOutOfRange(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument(Config{Width: 8, Height: 8, MaxFrames: 4}, nil)
	buf, err := d.Layers()[0].Frame(0)
	assert.NoError(err)
	buf.Set(0, 0, red)

	for _, frame := range []int{-1, 4, 100} {
		out := Composite(d, frame, true)
		assert.Equal(0, opaquePixels(out), "frame %d", frame)
	}
}

func TestDownscalePreview(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				b.Set(x, y, red)
			} else {
				b.Set(x, y, blue)
			}
		}
	}

	p := DownscalePreview(b, 16)
	assert.Equal(16, p.Width())
	assert.Equal(16, p.Height())

	// Nearest-neighbor sampling never invents blended colors.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := pixAt(t, p, x, y)
			if c != red && c != blue {
				t.Fatalf("unexpected color %v at (%d, %d)", c, x, y)
			}
		}
	}
	assert.Equal(red, pixAt(t, p, 2, 2))
	assert.Equal(blue, pixAt(t, p, 13, 2))
}

func TestDownscalePreview_TargetClamped(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(4, 4)
	p := DownscalePreview(b, 0)
	assert.Equal(1, p.Width())
	assert.Equal(1, p.Height())
}
