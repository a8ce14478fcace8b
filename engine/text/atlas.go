package text

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Atlas is a glyph table plus the coverage image its regions point into.
type Atlas struct {
	*Table
	Image *image.RGBA
}

// ASCII is the printable ASCII range.
func ASCII() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Latin1 adds the printable Latin-1 supplement to ASCII.
func Latin1() []rune {
	runes := ASCII()
	for r := rune(0xA1); r <= 0xFF; r++ {
		runes = append(runes, r)
	}
	return runes
}

// LoadTTF rasterizes runes of the font at path into an atlas.
func LoadTTF(path string, sizePx float32, runes []rune) (*Atlas, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read font")
	}
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new face")
	}
	defer face.Close()
	return FromFace(face, runes)
}

// Default is the built-in 7x13 bitmap font, used when no TTF is configured.
func Default() (*Atlas, error) {
	return FromFace(basicfont.Face7x13, ASCII())
}

// FromFace measures and draws runes of face into a shelf-packed atlas of
// white glyphs with alpha coverage.
func FromFace(face font.Face, runes []rune) (*Atlas, error) {
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(m.Descent.Round())
	lineHeight := float32(m.Height.Round())
	if lineHeight < ascent+descent {
		lineHeight = ascent + descent
	}

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	var space float32
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		if rr == ' ' {
			space = float32(adv.Round())
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}
	if space == 0 {
		if adv, ok := face.GlyphAdvance(' '); ok {
			space = float32(adv.Round())
		}
	}

	// Shelf packer: grow the square atlas until every glyph fits.
	const (
		padding  = 2
		maxAtlas = 4096
	)
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlas {
			return nil, errors.Wrapf(limits.ErrOutOfMemory, "font atlas larger than %d", maxAtlas)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make([]Glyph, 0, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			Width: float32(g.w), Height: float32(g.h),
		}
		if p, ok := pos[g.r]; ok {
			// The drawer's dot sits on the baseline.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.Region = geometry.PixelRect(p.X, p.Y, g.w, g.h, atlasSize, atlasSize)
		}
		glyphs = append(glyphs, gl)
	}

	return &Atlas{
		Table: NewTable(glyphs, space, lineHeight),
		Image: dst,
	}, nil
}
