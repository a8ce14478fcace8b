package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"faces.vert", "faces.frag"} {
		src, err := LoadShader(name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"))
		assert.True(t, strings.HasSuffix(src, "\x00"))
	}
	_, err := LoadShader("missing.glsl")
	assert.Error(t, err)
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestLoadIcons(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "folder.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(4, 4, color.RGBA{R: 255, A: 255})))
	require.NoError(t, f.Close())

	icons := LoadIcons(dir, "folder", "track")
	require.Contains(t, icons, "folder")
	assert.NotContains(t, icons, "track")
	assert.Equal(t, color.RGBA{R: 255, A: 255}, icons["folder"].RGBAAt(2, 2))

	assert.Empty(t, LoadIcons("", "folder"))
}

func TestStackLayers(t *testing.T) {
	red := solid(8, 8, color.RGBA{R: 255, A: 255})
	blue := solid(2, 2, color.RGBA{B: 255, A: 255})
	out := StackLayers(image.Pt(8, 8), red, blue)

	assert.Equal(t, image.Rect(0, 0, 8, 16), out.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(4, 4))
	scaled := out.RGBAAt(4, 12)
	assert.Zero(t, scaled.R)
	assert.GreaterOrEqual(t, scaled.B, uint8(250))
	assert.Len(t, Pixels(out), 8*16*4)
}

func TestPixelsRepacksSubImages(t *testing.T) {
	img := solid(4, 4, color.RGBA{G: 255, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	px := Pixels(imageToRGBA(sub))
	assert.Len(t, px, 2*2*4)
	assert.Equal(t, byte(255), px[1])
}
