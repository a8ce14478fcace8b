package ui

import "github.com/kdchambers/music-player-sub001/engine/geometry"

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Insets are in NDC units.
type Insets struct{ L, T, R, B float32 }

func Uniform(v float32) Insets { return Insets{v, v, v, v} }

// Pad shrinks e by in.
func Pad(e geometry.Extent, in Insets) geometry.Extent {
	return geometry.Extent{
		X:      e.X + in.L,
		Y:      e.Y - in.B,
		Width:  max(0, e.Width-in.L-in.R),
		Height: max(0, e.Height-in.T-in.B),
	}
}

// StackStyle lays out equally sized cells along Axis.
type StackStyle struct {
	Axis    Axis
	Cell    float32 // size along Axis
	Cross   float32 // size across Axis; ignored with AlignStretch
	Gap     float32
	Padding Insets
	Align   Align // cross-axis placement
}

// Stack returns the extents of n cells placed in area from the top-left.
// Cells that would overflow area are not returned.
func Stack(area geometry.Extent, s StackStyle, n int) []geometry.Extent {
	inner := Pad(area, s.Padding)
	out := make([]geometry.Extent, 0, n)
	for i := 0; i < n; i++ {
		offset := float32(i) * (s.Cell + s.Gap)
		switch s.Axis {
		case Horizontal:
			if offset+s.Cell > inner.Width+epsilon {
				return out
			}
			h := crossSize(s, inner.Height)
			top := inner.Top() + crossOffset(s.Align, inner.Height, h)
			out = append(out, geometry.Extent{X: inner.X + offset, Y: top + h, Width: s.Cell, Height: h})
		default:
			if offset+s.Cell > inner.Height+epsilon {
				return out
			}
			w := crossSize(s, inner.Width)
			x := inner.X + crossOffset(s.Align, inner.Width, w)
			out = append(out, geometry.Extent{X: x, Y: inner.Top() + offset + s.Cell, Width: w, Height: s.Cell})
		}
	}
	return out
}

// Capacity is how many cells of s fit along area.
func Capacity(area geometry.Extent, s StackStyle) int {
	inner := Pad(area, s.Padding)
	length := inner.Height
	if s.Axis == Horizontal {
		length = inner.Width
	}
	if s.Cell <= 0 || length < s.Cell {
		return 0
	}
	return int((length-s.Cell+epsilon)/(s.Cell+s.Gap)) + 1
}

// Center places a w×h box in the middle of outer.
func Center(outer geometry.Extent, w, h float32) geometry.Extent {
	x := outer.X + (outer.Width-w)/2
	top := outer.Top() + (outer.Height-h)/2
	return geometry.Extent{X: x, Y: top + h, Width: w, Height: h}
}

const epsilon = 1e-5

func crossSize(s StackStyle, avail float32) float32 {
	if s.Align == AlignStretch || s.Cross <= 0 {
		return avail
	}
	return min(s.Cross, avail)
}

func crossOffset(a Align, avail, size float32) float32 {
	switch a {
	case AlignCenter:
		return (avail - size) / 2
	case AlignEnd:
		return avail - size
	default:
		return 0
	}
}
