package pixl

import "image/color"

// ParseHex converts a hex color string of the form #rgb or #rrggbb
// (case-insensitive) to an opaque NRGBA color. Any string not matching
// either pattern resolves to opaque black.
func ParseHex(s string) color.NRGBA {
	black := color.NRGBA{A: 0xff}

	if len(s) == 0 || s[0] != '#' {
		return black
	}

	switch len(s) {
	case 4: // #rgb
		r, okr := nibble(s[1])
		g, okg := nibble(s[2])
		b, okb := nibble(s[3])
		if !okr || !okg || !okb {
			return black
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}
	case 7: // #rrggbb
		r, okr := hexByte(s[1], s[2])
		g, okg := hexByte(s[3], s[4])
		b, okb := hexByte(s[5], s[6])
		if !okr || !okg || !okb {
			return black
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return black
}

// nibble decodes a single hex digit.
func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// hexByte decodes a two digit hex pair.
func hexByte(hi, lo byte) (uint8, bool) {
	h, okh := nibble(hi)
	l, okl := nibble(lo)
	return h<<4 | l, okh && okl
}
