package geometry

import (
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/stretchr/testify/assert"
)

func TestExtentContains(t *testing.T) {
	e := Extent{X: -0.5, Y: 0.5, Width: 1, Height: 0.5}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Point{0, 0.25}, true},
		{"top-left edge", Point{-0.5, 0}, true},
		{"bottom-right edge", Point{0.5, 0.5}, true},
		{"above", Point{0, -0.1}, false},
		{"below", Point{0, 0.6}, false},
		{"left", Point{-0.6, 0.25}, false},
		{"right", Point{0.6, 0.25}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Contains(tt.p))
		})
	}
}

func TestColoredQuadWinding(t *testing.T) {
	e := Extent{X: 0, Y: 1, Width: 0.5, Height: 0.25}
	f := ColoredQuad(e, colors.Red)

	assert.Equal(t, Point{0, 0.75}, Point{f[TopLeft].X, f[TopLeft].Y})
	assert.Equal(t, Point{0.5, 0.75}, Point{f[TopRight].X, f[TopRight].Y})
	assert.Equal(t, Point{0.5, 1}, Point{f[BottomRight].X, f[BottomRight].Y})
	assert.Equal(t, Point{0, 1}, Point{f[BottomLeft].X, f[BottomLeft].Y})
	for _, v := range f {
		assert.Equal(t, NoTexture, v.U)
		assert.Equal(t, colors.Red, v.Color)
	}
	assert.Equal(t, e, f.Bounds())
}

func TestTexturedQuadUVs(t *testing.T) {
	r := TexRect{0.1, 0.2, 0.3, 0.4}
	f := TexturedQuad(Extent{Width: 1, Height: 1}, r, colors.White)
	assert.Equal(t, [2]float32{0.1, 0.2}, [2]float32{f[TopLeft].U, f[TopLeft].V})
	assert.Equal(t, [2]float32{0.3, 0.4}, [2]float32{f[BottomRight].U, f[BottomRight].V})
}

func TestTriangleRepeatsLastPoint(t *testing.T) {
	f := Triangle(Point{0, 0}, Point{1, 0.5}, Point{0, 1}, colors.White)
	assert.Equal(t, f[2], f[3])
}

func TestSetColor(t *testing.T) {
	f := ColoredQuad(Extent{Width: 1, Height: 1}, colors.Red)
	f.SetColor(colors.Blue)
	for _, v := range f {
		assert.Equal(t, colors.Blue, v.Color)
	}
}

func TestScaleAndPixelToNDC(t *testing.T) {
	assert.Equal(t, ScaleFactor{X: 0.01, Y: 0.02}, ScaleForScreen(200, 100))
	assert.Equal(t, ScaleFactor{}, ScaleForScreen(0, 100))

	assert.Equal(t, Point{-1, -1}, PixelToNDC(0, 0, 200, 100))
	assert.Equal(t, Point{0, 0}, PixelToNDC(100, 50, 200, 100))
	assert.Equal(t, Point{1, 1}, PixelToNDC(200, 100, 200, 100))
}

func TestLayerRegion(t *testing.T) {
	assert.Equal(t, TexRect{0, 0.5, 1, 1}, LayerRegion(1, 2))
	assert.Equal(t, FullTexture, LayerRegion(0, 0))

	r := TexRect{0.25, 0.5, 0.5, 1}.InLayer(1, 2)
	assert.Equal(t, TexRect{0.25, 0.75, 0.5, 1}, r)
}
