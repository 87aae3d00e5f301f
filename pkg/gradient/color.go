package gradient

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a hex-encoded color value. The string form is what lipgloss and
// termenv consume, so converting at the render edge is free.
//
// Supported encodings, with or without a leading '#':
//
//	#rgb       4-bit channels, opaque
//	#rgba      4-bit channels with alpha
//	#rrggbb    8-bit channels, opaque
//	#rrggbbaa  8-bit channels with alpha
//
// Anything else decodes as opaque black. Color values are immutable.
type Color string

// Black is the decode fallback for malformed input.
const Black Color = "#000000"

// stripNonAlphanumeric drops every character that is not a letter or digit,
// leaving the hex payload regardless of '#' or other markers.
func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RGBA decodes the color into normalized channels, each in [0,1].
//
// The channel layout is chosen by the number of hex digits left after
// stripping non-alphanumeric characters: 8 digits is RRGGBBAA, 6 is RRGGBB,
// 4 is RGBA, 3 is RGB. Alpha defaults to 1 when absent. Any other digit
// count, or a hex parse failure, fails softly to opaque black (0,0,0,1).
func (c Color) RGBA() (r, g, b, a float64) {
	hex := stripNonAlphanumeric(string(c))
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, 0, 0, 1
	}

	switch len(hex) {
	case 8:
		r = float64(v>>24&0xFF) / 255
		g = float64(v>>16&0xFF) / 255
		b = float64(v>>8&0xFF) / 255
		a = float64(v&0xFF) / 255
	case 6:
		r = float64(v>>16&0xFF) / 255
		g = float64(v>>8&0xFF) / 255
		b = float64(v&0xFF) / 255
		a = 1
	case 4:
		r = float64(v>>12&0xF) / 15
		g = float64(v>>8&0xF) / 15
		b = float64(v>>4&0xF) / 15
		a = float64(v&0xF) / 15
	case 3:
		r = float64(v>>8&0xF) / 15
		g = float64(v>>4&0xF) / 15
		b = float64(v&0xF) / 15
		a = 1
	default:
		return 0, 0, 0, 1
	}
	return r, g, b, a
}

// Valid reports whether the color carries a parseable hex payload of a
// supported width. Decoding never fails, but config loading wants to reject
// typos instead of silently painting black.
func (c Color) Valid() bool {
	hex := stripNonAlphanumeric(string(c))
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return false
	}
	switch len(hex) {
	case 3, 4, 6, 8:
		return true
	}
	return false
}

// FromRGBA encodes normalized channels as a Color. Channels are clamped to
// [0,1] and rounded to 8 bits. Fully opaque colors encode as #rrggbb so a
// 6-digit input survives a decode/encode round trip byte for byte.
func FromRGBA(r, g, b, a float64) Color {
	ri := channelByte(r)
	gi := channelByte(g)
	bi := channelByte(b)
	ai := channelByte(a)
	if ai == 0xFF {
		return Color(fmt.Sprintf("#%02x%02x%02x", ri, gi, bi))
	}
	return Color(fmt.Sprintf("#%02x%02x%02x%02x", ri, gi, bi, ai))
}

func channelByte(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}

// Interpolate returns the color a fraction t of the way from one color to
// the other, interpolating each RGBA channel independently. The blend is a
// straight lerp in the decoded space, not perceptually uniform.
//
// t is not clamped; callers wanting a meaningful result keep it in [0,1].
func Interpolate(from, to Color, t float64) Color {
	fr, fg, fb, fa := from.RGBA()
	tr, tg, tb, ta := to.RGBA()
	return FromRGBA(
		fr+(tr-fr)*t,
		fg+(tg-fg)*t,
		fb+(tb-fb)*t,
		fa+(ta-fa)*t,
	)
}
