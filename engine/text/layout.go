package text

import (
	"unicode"

	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/pkg/errors"
)

// Options position and style a text run.
type Options struct {
	// Origin is the left end of the first baseline, in NDC.
	Origin geometry.Point
	// Scale converts glyph pixels to NDC. The zero value means 1:1.
	Scale geometry.ScaleFactor
	Color colors.Color
	// LineHeight in pixels. Zero forbids newlines.
	LineHeight float32
}

func (o Options) scale() geometry.ScaleFactor {
	if o.Scale == (geometry.ScaleFactor{}) {
		return geometry.ScaleFactor{X: 1, Y: 1}
	}
	return o.Scale
}

// Dimensions of a laid out run, in the units of Options.Scale.
type Dimensions struct {
	Width  float32 // widest line
	Height float32 // tallest glyph, or lines × line height
	Ascent float32 // tallest extent above the baseline
}

// placement is one face-emitting glyph at its pen position (pixels, relative
// to the origin; baseline grows downward per line).
type placement struct {
	glyph    Glyph
	pen      float32
	baseline float32
}

// walk is the single layout routine behind Generate and Measure. fn, when
// set, is called for every glyph that produces a face.
func walk(gs GlyphSet, s string, lineHeight float32, fn func(placement)) (Dimensions, int, error) {
	var (
		dims      Dimensions
		pen       float32
		baseline  float32
		lines     = 1
		faces     int
		fellBack  bool
		fallbackI = -1
	)
	for _, r := range s {
		switch {
		case r == '\n':
			if lineHeight <= 0 {
				return Dimensions{}, 0, ErrInvalidLineHeightNotSet
			}
			dims.Width = max(dims.Width, pen)
			pen = 0
			baseline += lineHeight
			lines++
			continue
		case r == ' ' || (unicode.IsSpace(r) && !unicode.IsControl(r)):
			pen += gs.SpaceAdvance()
			continue
		case unicode.IsControl(r) || !unicode.IsPrint(r):
			continue
		}

		i, ok := gs.GlyphIndex(r)
		if !ok {
			if fallbackI < 0 {
				fi, ok := gs.GlyphIndex(Fallback)
				if !ok {
					return Dimensions{}, 0, errors.Wrapf(ErrCharacterNotInSet, "rune %q", r)
				}
				fallbackI = fi
			}
			if !fellBack {
				logging.Logger().Warn("glyph missing, using fallback", "rune", string(r), "text", s)
				fellBack = true
			}
			i = fallbackI
		}

		g := gs.Metrics(i)
		if fn != nil {
			fn(placement{glyph: g, pen: pen, baseline: baseline})
		}
		faces++
		pen += g.Advance
		dims.Height = max(dims.Height, g.Height)
		dims.Ascent = max(dims.Ascent, g.BearingY)
	}
	dims.Width = max(dims.Width, pen)
	if lines > 1 {
		dims.Height = float32(lines) * lineHeight
	}
	return dims, faces, nil
}

// Measure lays s out without writing faces. It agrees with Generate for the
// same glyph set and options.
func Measure(gs GlyphSet, s string, opts Options) (Dimensions, error) {
	d, _, err := walk(gs, s, opts.LineHeight, nil)
	if err != nil {
		return Dimensions{}, err
	}
	sc := opts.scale()
	return Dimensions{Width: d.Width * sc.X, Height: d.Height * sc.Y, Ascent: d.Ascent * sc.Y}, nil
}

// FaceCount is the number of faces Generate would write for s.
func FaceCount(gs GlyphSet, s string, lineHeight float32) (int, error) {
	_, n, err := walk(gs, s, lineHeight, nil)
	return n, err
}

// Generate writes one textured face per visible glyph of s. All faces are
// reserved up front, so on error nothing is written.
func Generate(w *arena.Writer, gs GlyphSet, s string, opts Options) (arena.Span, error) {
	n, err := FaceCount(gs, s, opts.LineHeight)
	if err != nil {
		return arena.Span{}, err
	}
	sp, faces, err := w.Allocate(n)
	if err != nil {
		return arena.Span{}, err
	}
	sc := opts.scale()
	i := 0
	_, _, err = walk(gs, s, opts.LineHeight, func(p placement) {
		g := p.glyph
		top := opts.Origin.Y + (p.baseline-g.BearingY)*sc.Y
		e := geometry.Extent{
			X:      opts.Origin.X + (p.pen+g.BearingX)*sc.X,
			Y:      top + g.Height*sc.Y,
			Width:  g.Width * sc.X,
			Height: g.Height * sc.Y,
		}
		faces[i] = geometry.TexturedQuad(e, g.Region, opts.Color)
		i++
	})
	return sp, err
}
