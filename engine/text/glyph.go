package text

import "github.com/kdchambers/music-player-sub001/engine/geometry"

// Glyph metrics are in pixels.
type Glyph struct {
	Rune     rune
	Advance  float32
	BearingX float32 // pen position to left edge
	BearingY float32 // baseline to top edge
	Width    float32
	Height   float32
	Region   geometry.TexRect // atlas region
}

// GlyphSet provides the metrics text layout runs on.
type GlyphSet interface {
	// GlyphIndex finds r; ok is false when the set has no glyph for it.
	GlyphIndex(r rune) (i int, ok bool)
	Metrics(i int) Glyph
	// SpaceAdvance is how far a space moves the pen. Spaces emit no face.
	SpaceAdvance() float32
}

// Table is a GlyphSet backed by a slice scanned linearly; sets are a few
// hundred runes at most.
type Table struct {
	glyphs     []Glyph
	space      float32
	lineHeight float32
}

// NewTable copies glyphs.
func NewTable(glyphs []Glyph, spaceAdvance, lineHeight float32) *Table {
	return &Table{
		glyphs:     append([]Glyph(nil), glyphs...),
		space:      spaceAdvance,
		lineHeight: lineHeight,
	}
}

func (t *Table) GlyphIndex(r rune) (int, bool) {
	for i := range t.glyphs {
		if t.glyphs[i].Rune == r {
			return i, true
		}
	}
	return 0, false
}

func (t *Table) Metrics(i int) Glyph   { return t.glyphs[i] }
func (t *Table) SpaceAdvance() float32 { return t.space }
func (t *Table) Len() int              { return len(t.glyphs) }

// LineHeight is the font's ascent + descent + line gap in pixels.
func (t *Table) LineHeight() float32 { return t.lineHeight }

// PlaceInLayer remaps every atlas region into layer of a texture made of
// layers stacked images.
func (t *Table) PlaceInLayer(layer, layers int) {
	for i := range t.glyphs {
		t.glyphs[i].Region = t.glyphs[i].Region.InLayer(layer, layers)
	}
}
