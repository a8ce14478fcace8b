package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// LoadPNG decodes the PNG at path into RGBA.
func LoadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode png %q", path)
	}
	return imageToRGBA(img), nil
}

// LoadIcons loads dir/<name>.png for each name. Missing files are skipped
// with a warning; the returned map only holds what loaded.
func LoadIcons(dir string, names ...string) map[string]*image.RGBA {
	out := make(map[string]*image.RGBA, len(names))
	if dir == "" {
		return out
	}
	for _, n := range names {
		img, err := LoadPNG(filepath.Join(dir, n+".png"))
		if err != nil {
			logging.Logger().Warn("icon not loaded", "icon", n, "err", err)
			continue
		}
		out[n] = img
	}
	return out
}

// StackLayers scales every layer to size and stacks them top to bottom in a
// single image, the layout geometry.LayerRegion addresses.
func StackLayers(size image.Point, layers ...image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y*len(layers)))
	for i, l := range layers {
		slot := image.Rect(0, i*size.Y, size.X, (i+1)*size.Y)
		if l.Bounds().Size() == size {
			draw.Copy(dst, slot.Min, l, l.Bounds(), draw.Src, nil)
			continue
		}
		draw.CatmullRom.Scale(dst, slot, l, l.Bounds(), draw.Src, nil)
	}
	return dst
}

// Pixels returns img as tightly packed RGBA8 rows (stride == 4*w).
func Pixels(img *image.RGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == w*4 {
		return img.Pix[:w*h*4]
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return out
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
