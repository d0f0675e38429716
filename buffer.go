package pixl

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Buffer is a fixed-size RGBA pixel raster, the unit of drawable content.
// Pixels are stored non-premultiplied, four bytes per pixel in row-major
// order, so a buffer can be viewed as an *image.NRGBA without copying.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer creates a fully transparent buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw pixel data in NRGBA channel order.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// At returns the color of the pixel at (x, y).
func (b *Buffer) At(x, y int) (color.NRGBA, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}, errors.Wrapf(ErrOutOfRange, "pixel (%d, %d)", x, y)
	}
	i := (y*b.width + x) * 4
	return color.NRGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}, nil
}

// Set overwrites all four channels of the pixel at (x, y). Out of range
// coordinates are silently ignored so that the tools can follow the
// pointer off the grid without aborting a stroke.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Image wraps the buffer as an *image.NRGBA sharing the same storage.
// Mutating the returned image mutates the buffer; callers that need an
// isolated view should go through Clone first.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// FromImage converts any image type to a buffer with min-point at (0, 0).
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < b.height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.pix[y*b.width*4:(y+1)*b.width*4], src.Pix[si:si+b.width*4])
		}
	default:
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				b.Set(x, y, c)
			}
		}
	}
	return b
}
