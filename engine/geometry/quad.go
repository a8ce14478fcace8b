package geometry

import "github.com/kdchambers/music-player-sub001/engine/colors"

// ColoredQuad fills extent e with a solid color.
func ColoredQuad(e Extent, c colors.Color) Face {
	return Face{
		TopLeft:     {X: e.Left(), Y: e.Top(), U: NoTexture, V: NoTexture, Color: c},
		TopRight:    {X: e.Right(), Y: e.Top(), U: NoTexture, V: NoTexture, Color: c},
		BottomRight: {X: e.Right(), Y: e.Bottom(), U: NoTexture, V: NoTexture, Color: c},
		BottomLeft:  {X: e.Left(), Y: e.Bottom(), U: NoTexture, V: NoTexture, Color: c},
	}
}

// TexturedQuad maps region r onto extent e, tinted by c.
func TexturedQuad(e Extent, r TexRect, c colors.Color) Face {
	return Face{
		TopLeft:     {X: e.Left(), Y: e.Top(), U: r.U0, V: r.V0, Color: c},
		TopRight:    {X: e.Right(), Y: e.Top(), U: r.U1, V: r.V0, Color: c},
		BottomRight: {X: e.Right(), Y: e.Bottom(), U: r.U1, V: r.V1, Color: c},
		BottomLeft:  {X: e.Left(), Y: e.Bottom(), U: r.U0, V: r.V1, Color: c},
	}
}

// Triangle stores a triangle in a face by repeating the last point.
func Triangle(a, b, c Point, col colors.Color) Face {
	v := func(p Point) Vertex {
		return Vertex{X: p.X, Y: p.Y, U: NoTexture, V: NoTexture, Color: col}
	}
	return Face{v(a), v(b), v(c), v(c)}
}

// SetColor overwrites the color of every vertex in f.
func (f *Face) SetColor(c colors.Color) {
	for i := range f {
		f[i].Color = c
	}
}

// Bounds returns the smallest extent that contains every vertex of f.
func (f Face) Bounds() Extent {
	minX, maxX := f[0].X, f[0].X
	minY, maxY := f[0].Y, f[0].Y
	for _, v := range f[1:] {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	return Extent{X: minX, Y: maxY, Width: maxX - minX, Height: maxY - minY}
}
