// Package blend implements the Porter-Duff composition operations used
// for merging a pixel layer with the backdrop accumulated so far.
// Porter and Duff presented in their paper 12 different composition
// operations, but the image/draw core package implements only the
// source-over-destination and source operators.
//
// The layer compositor accumulates directly into a single shared output
// buffer, so unlike image/draw the operators here write their result back
// into the destination image in place. The source image is never mutated.
package blend

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// The supported composition operators.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Op holds the currently active composition operator.
type Op struct {
	current string
	ops     []string
}

// NewOp initializes the operator registry with src_over active, the
// operator the layer compositor runs with.
func NewOp() *Op {
	return &Op{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operators.
func (op *Op) Set(cop string) error {
	for _, o := range op.ops {
		if o == cop {
			op.current = cop
			return nil
		}
	}
	return errors.Errorf("unsupported composite operation: %s", cop)
}

// Get returns the currently active operator.
func (op *Op) Get() string {
	return op.current
}

// Draw composites src into dst using the active operator and stores the
// result back into dst. Both images must share the same bounds. The
// channels are blended in premultiplied space and converted back on
// store, so partially transparent sources blend correctly.
func (op *Op) Draw(dst, src *image.NRGBA) {
	dx, dy := dst.Bounds().Dx(), dst.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := src.NRGBAAt(x, y)
			b := dst.NRGBAAt(x, y)

			rsn := float64(s.R) / 255 * float64(s.A) / 255
			gsn := float64(s.G) / 255 * float64(s.A) / 255
			bsn := float64(s.B) / 255 * float64(s.A) / 255
			asn := float64(s.A) / 255

			rbn := float64(b.R) / 255 * float64(b.A) / 255
			gbn := float64(b.G) / 255 * float64(b.A) / 255
			bbn := float64(b.B) / 255 * float64(b.A) / 255
			abn := float64(b.A) / 255

			var rn, gn, bn, an float64

			// applying the alpha composition formula
			switch op.current {
			case Copy:
				rn = rsn
				gn = gsn
				bn = bsn
				an = asn
			case SrcOver:
				rn = rsn + rbn*(1-asn)
				gn = gsn + gbn*(1-asn)
				bn = bsn + bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstOver:
				rn = rsn*(1-abn) + rbn
				gn = gsn*(1-abn) + gbn
				bn = bsn*(1-abn) + bbn
				an = asn*(1-abn) + abn
			case SrcIn:
				rn = rsn * abn
				gn = gsn * abn
				bn = bsn * abn
				an = asn * abn
			case DstIn:
				rn = rbn * asn
				gn = gbn * asn
				bn = bbn * asn
				an = abn * asn
			case SrcOut:
				rn = rsn * (1 - abn)
				gn = gsn * (1 - abn)
				bn = bsn * (1 - abn)
				an = asn * (1 - abn)
			case DstOut:
				rn = rbn * (1 - asn)
				gn = gbn * (1 - asn)
				bn = bbn * (1 - asn)
				an = abn * (1 - asn)
			case SrcAtop:
				rn = rsn*abn + rbn*(1-asn)
				gn = gsn*abn + gbn*(1-asn)
				bn = bsn*abn + bbn*(1-asn)
				an = asn*abn + abn*(1-asn)
			case DstAtop:
				rn = rsn*(1-abn) + rbn*asn
				gn = gsn*(1-abn) + gbn*asn
				bn = bsn*(1-abn) + bbn*asn
				an = asn*(1-abn) + abn*asn
			case Xor:
				rn = rsn*(1-abn) + rbn*(1-asn)
				gn = gsn*(1-abn) + gbn*(1-asn)
				bn = bsn*(1-abn) + bbn*(1-asn)
				an = asn*(1-abn) + abn*(1-asn)
			default:
				continue
			}

			// Convert the premultiplied result back to straight alpha.
			if an > 0 {
				rn /= an
				gn /= an
				bn /= an
			} else {
				rn, gn, bn = 0, 0, 0
			}

			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}

// Dim returns a copy of src with every pixel's alpha scaled by factor,
// leaving the color channels untouched. The compositor uses it to
// produce the translucent onion-skin ghost of the previous frame.
func Dim(src *image.NRGBA, factor float64) *image.NRGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	out := image.NewNRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i]) * factor)
	}
	return out
}
