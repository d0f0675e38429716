package pixl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SetGetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(32, 32)
	c := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	for _, p := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}, {16, 7}} {
		b.Set(p[0], p[1], c)
		got, err := b.At(p[0], p[1])
		assert.NoError(err)
		assert.Equal(c, got)
	}
}

func TestBuffer_SetOutOfRange(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(32, 32)
	b.Set(3, 3, color.NRGBA{R: 255, A: 255})
	before := append([]uint8(nil), b.Pix()...)

	c := color.NRGBA{G: 255, A: 255}
	b.Set(-1, 0, c)
	b.Set(0, -1, c)
	b.Set(32, 0, c)
	b.Set(0, 32, c)
	b.Set(-100, 500, c)

	assert.EqualValues(before, b.Pix())
}

func TestBuffer_AtOutOfRange(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(32, 32)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {32, 0}, {0, 32}} {
		_, err := b.At(p[0], p[1])
		assert.ErrorIs(err, ErrOutOfRange)
	}
}

func TestBuffer_Clone(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(8, 8)
	b.Set(2, 2, color.NRGBA{B: 255, A: 255})

	c := b.Clone()
	assert.EqualValues(b.Pix(), c.Pix())

	c.Set(2, 2, color.NRGBA{R: 255, A: 255})
	got, err := b.At(2, 2)
	assert.NoError(err)
	assert.Equal(color.NRGBA{B: 255, A: 255}, got)
}

func TestBuffer_ImageSharesStorage(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(8, 8)
	img := b.Image()
	assert.Equal(8*8*4, len(img.Pix))
	assert.Equal(8*4, img.Stride)

	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	got, err := b.At(1, 1)
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 255, A: 255}, got)
}

func TestBuffer_FromImage(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(4, 4)
	b.Set(3, 0, color.NRGBA{R: 11, G: 22, B: 33, A: 44})

	got := FromImage(b.Image())
	assert.Equal(4, got.Width())
	assert.Equal(4, got.Height())
	assert.EqualValues(b.Pix(), got.Pix())
}
