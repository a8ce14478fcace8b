package colors

import (
	"strconv"
	"strings"

	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Color is linear RGBA in [0..1], laid out exactly as the vertex attribute.
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 builds a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// ParseHex accepts "#rrggbb" or "#rrggbbaa" (the '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.Wrapf(limits.ErrInvalidArgument, "color %q: want 6 or 8 hex digits", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(limits.ErrInvalidArgument, "color %q: %v", s, err)
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHex is ParseHex for compile-time theme constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
