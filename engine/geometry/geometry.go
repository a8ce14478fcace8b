// Package geometry holds the vertex layout and the pure functions that build
// quads ("faces") from an anchor, an extent and a color or texture region.
//
// Coordinates are normalized device coordinates with +y pointing down the
// screen: (-1,-1) is the top-left corner and (1,1) the bottom-right.
package geometry

import "github.com/kdchambers/music-player-sub001/engine/colors"

// NoTexture in Vertex.U tells the fragment shader to use the vertex color
// only. Any value outside [0,1] would do.
const NoTexture float32 = 2

// Vertex is uploaded as-is: pos2, uv2, color4 (32 bytes).
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}

// Corner indices of a Face. The winding is fixed.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Face is a quad; the index buffer draws it as two triangles.
type Face [4]Vertex

// NullFace is fully transparent and degenerate. Used to blank out slots that
// are reserved but not displayed.
var NullFace = Face{}

// Point is a position in NDC.
type Point struct{ X, Y float32 }

// ScaleFactor converts pixels to NDC units along each axis.
type ScaleFactor struct{ X, Y float32 }

// ScaleForScreen returns the factor for a framebuffer of w×h pixels. NDC spans
// two units per axis.
func ScaleForScreen(w, h int) ScaleFactor {
	if w <= 0 || h <= 0 {
		return ScaleFactor{}
	}
	return ScaleFactor{X: 2 / float32(w), Y: 2 / float32(h)}
}

// PixelToNDC maps a window-space cursor position to NDC.
func PixelToNDC(x, y float64, w, h int) Point {
	if w <= 0 || h <= 0 {
		return Point{}
	}
	return Point{
		X: float32(2*x/float64(w) - 1),
		Y: float32(2*y/float64(h) - 1),
	}
}

// Extent is an axis-aligned rectangle anchored at its bottom-left corner:
// it spans X..X+Width horizontally and Y-Height..Y vertically.
type Extent struct {
	X, Y          float32
	Width, Height float32
}

func (e Extent) Left() float32   { return e.X }
func (e Extent) Right() float32  { return e.X + e.Width }
func (e Extent) Top() float32    { return e.Y - e.Height }
func (e Extent) Bottom() float32 { return e.Y }

// Contains reports whether p lies inside e, edges included.
func (e Extent) Contains(p Point) bool {
	return p.X >= e.X && p.X <= e.X+e.Width &&
		p.Y <= e.Y && p.Y >= e.Y-e.Height
}

// Inset shrinks e by dx on the left and right and dy on top and bottom.
func (e Extent) Inset(dx, dy float32) Extent {
	return Extent{X: e.X + dx, Y: e.Y - dy, Width: e.Width - 2*dx, Height: e.Height - 2*dy}
}

// TexRect is a normalized region of the bound texture.
type TexRect struct {
	U0, V0 float32 // top-left
	U1, V1 float32 // bottom-right
}

// FullTexture covers the whole texture.
var FullTexture = TexRect{0, 0, 1, 1}

// LayerRegion returns the region of layer within a texture made of layers
// equally sized images stacked top to bottom.
func LayerRegion(layer, layers int) TexRect {
	if layers <= 0 {
		return FullTexture
	}
	h := 1 / float32(layers)
	return TexRect{U0: 0, V0: float32(layer) * h, U1: 1, V1: float32(layer+1) * h}
}

// InLayer remaps r, expressed relative to one layer, into the stacked texture.
func (r TexRect) InLayer(layer, layers int) TexRect {
	l := LayerRegion(layer, layers)
	h := l.V1 - l.V0
	return TexRect{U0: r.U0, V0: l.V0 + r.V0*h, U1: r.U1, V1: l.V0 + r.V1*h}
}

// PixelRect converts a pixel rectangle inside a w×h image to a TexRect.
func PixelRect(x, y, w, h, imageW, imageH int) TexRect {
	return TexRect{
		U0: float32(x) / float32(imageW),
		V0: float32(y) / float32(imageH),
		U1: float32(x+w) / float32(imageW),
		V1: float32(y+h) / float32(imageH),
	}
}
