package pixl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	black := color.NRGBA{A: 255}

	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#F00", color.NRGBA{R: 255, A: 255}},
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#FF0000", color.NRGBA{R: 255, A: 255}},
		{"#0f0", color.NRGBA{G: 255, A: 255}},
		{"#2196f3", color.NRGBA{R: 33, G: 150, B: 243, A: 255}},
		{"#abc", color.NRGBA{R: 170, G: 187, B: 204, A: 255}},
		{"#000000", black},
		// Everything below falls back to opaque black.
		{"notacolor", black},
		{"", black},
		{"f00", black},
		{"#ff00", black},
		{"#ff000", black},
		{"#gggggg", black},
		{"#12345g", black},
		{"#", black},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHex(tt.hex), "ParseHex(%q)", tt.hex)
	}
}
