package ui

import (
	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/kdchambers/music-player-sub001/engine/text"
	"github.com/pkg/errors"
)

// ===== Button =====

type ButtonStyle struct {
	Extent     geometry.Extent
	Background colors.Color
	TextColor  colors.Color
	Label      string
	Align      Align   // label placement; AlignStretch behaves like AlignStart
	Padding    float32 // horizontal label inset, NDC
	Scale      geometry.ScaleFactor
}

// Button writes a background face followed by the label faces, so the label
// draws on top. The returned span starts at the background face.
func Button(w *arena.Writer, gs text.GlyphSet, s ButtonStyle) (arena.Span, error) {
	n, err := text.FaceCount(gs, s.Label, 0)
	if err != nil {
		return arena.Span{}, err
	}
	if w.Remaining() < n+1 {
		return arena.Span{}, limits.Exhausted("face writer", w.Capacity(), w.Used()+n+1)
	}
	dims, err := text.Measure(gs, s.Label, text.Options{Scale: s.Scale})
	if err != nil {
		return arena.Span{}, err
	}
	inner := s.Extent.Width - 2*s.Padding
	if dims.Width > inner {
		return arena.Span{}, errors.Wrapf(limits.ErrInvalidArgument, "label %q is %.4f wide, button fits %.4f", s.Label, dims.Width, inner)
	}

	mark := w.Mark()
	_, bg, err := w.Create()
	if err != nil {
		return arena.Span{}, err
	}
	*bg = geometry.ColoredQuad(s.Extent, s.Background)

	x := s.Extent.X + s.Padding
	switch s.Align {
	case AlignCenter:
		x = s.Extent.X + (s.Extent.Width-dims.Width)/2
	case AlignEnd:
		x = s.Extent.Right() - s.Padding - dims.Width
	}
	top := s.Extent.Top() + (s.Extent.Height-dims.Height)/2
	if _, err := text.Generate(w, gs, s.Label, text.Options{
		Origin: geometry.Point{X: x, Y: top + dims.Ascent},
		Scale:  s.Scale,
		Color:  s.TextColor,
	}); err != nil {
		return arena.Span{}, err
	}
	return w.Since(mark), nil
}

// ===== Image =====

type ImageStyle struct {
	Extent geometry.Extent
	Layer  int // which stacked texture layer to show
	Layers int
	Tint   colors.Color
}

// Image writes one textured face showing a whole texture layer.
func Image(w *arena.Writer, s ImageStyle) (arena.Span, error) {
	if s.Layers <= 0 || s.Layer < 0 || s.Layer >= s.Layers {
		return arena.Span{}, errors.Wrapf(limits.ErrInvalidArgument, "image layer %d of %d", s.Layer, s.Layers)
	}
	i, f, err := w.Create()
	if err != nil {
		return arena.Span{}, err
	}
	*f = geometry.TexturedQuad(s.Extent, geometry.LayerRegion(s.Layer, s.Layers), s.Tint)
	return arena.Span{Start: i, Count: 1}, nil
}

// ===== Text =====

// Text writes a text run. opts.Origin is the left end of the baseline.
func Text(w *arena.Writer, gs text.GlyphSet, s string, opts text.Options) (arena.Span, error) {
	return text.Generate(w, gs, s, opts)
}

// FixedText writes s into exactly reserve faces, padding with null faces, so
// the run can later be replaced in place with RewriteFixedText.
func FixedText(w *arena.Writer, gs text.GlyphSet, s string, opts text.Options, reserve int) (arena.Span, error) {
	n, err := text.FaceCount(gs, s, opts.LineHeight)
	if err != nil {
		return arena.Span{}, err
	}
	if n > reserve {
		return arena.Span{}, errors.Wrapf(limits.ErrInvalidArgument, "text %q needs %d faces, %d reserved", s, n, reserve)
	}
	sp, _, err := w.Allocate(reserve)
	if err != nil {
		return arena.Span{}, err
	}
	return sp, writeFixed(w, sp, gs, s, opts)
}

// RewriteFixedText replaces the run previously written by FixedText at sp.
// parent must be a writer whose range covers sp.
func RewriteFixedText(parent *arena.Writer, sp arena.Span, gs text.GlyphSet, s string, opts text.Options) error {
	n, err := text.FaceCount(gs, s, opts.LineHeight)
	if err != nil {
		return err
	}
	if n > sp.Count {
		return errors.Wrapf(limits.ErrInvalidArgument, "text %q needs %d faces, %d reserved", s, n, sp.Count)
	}
	return writeFixed(parent, sp, gs, s, opts)
}

func writeFixed(parent *arena.Writer, sp arena.Span, gs text.GlyphSet, s string, opts text.Options) error {
	child, err := parent.ChildSpan(sp)
	if err != nil {
		return err
	}
	if _, err := text.Generate(child, gs, s, opts); err != nil {
		return err
	}
	_, err = child.Fill()
	return err
}

// ===== Progress bar =====

type ProgressStyle struct {
	Extent     geometry.Extent
	Background colors.Color
	Fill       colors.Color
	Progress   float32 // clamped to [0,1]
}

// ProgressBar writes the track face followed by the fill face.
func ProgressBar(w *arena.Writer, s ProgressStyle) (arena.Span, error) {
	sp, faces, err := w.Allocate(2)
	if err != nil {
		return arena.Span{}, err
	}
	faces[0] = geometry.ColoredQuad(s.Extent, s.Background)
	faces[1] = progressFill(s)
	return sp, nil
}

// SetProgress rewrites the fill face of a bar written by ProgressBar.
func SetProgress(parent *arena.Writer, bar arena.Span, s ProgressStyle) error {
	if bar.Count != 2 {
		return errors.Wrapf(limits.ErrInvalidArgument, "progress bar span of %d faces", bar.Count)
	}
	child, err := parent.ChildSpan(arena.Span{Start: bar.Start + 1, Count: 1})
	if err != nil {
		return err
	}
	_, f, err := child.Create()
	if err != nil {
		return err
	}
	*f = progressFill(s)
	return nil
}

func progressFill(s ProgressStyle) geometry.Face {
	p := min(max(s.Progress, 0), 1)
	fill := s.Extent
	fill.Width *= p
	return geometry.ColoredQuad(fill, s.Fill)
}

// ===== Grid lines =====

type GridStyle struct {
	Extent     geometry.Extent
	Rows       int
	Columns    int
	LineWidth  float32 // thickness of vertical lines, NDC
	LineHeight float32 // thickness of horizontal lines, NDC
	Color      colors.Color
}

// GridLines writes Rows+1 horizontal lines then Columns+1 vertical lines,
// each centred on its grid boundary.
func GridLines(w *arena.Writer, s GridStyle) (arena.Span, error) {
	if s.Rows < 1 || s.Columns < 1 {
		return arena.Span{}, errors.Wrapf(limits.ErrInvalidArgument, "grid %dx%d", s.Rows, s.Columns)
	}
	sp, faces, err := w.Allocate(s.Rows + 1 + s.Columns + 1)
	if err != nil {
		return arena.Span{}, err
	}
	e := s.Extent
	rowStep := e.Height / float32(s.Rows)
	for i := 0; i <= s.Rows; i++ {
		y := e.Top() + float32(i)*rowStep
		faces[i] = geometry.ColoredQuad(geometry.Extent{X: e.X, Y: y + s.LineHeight/2, Width: e.Width, Height: s.LineHeight}, s.Color)
	}
	colStep := e.Width / float32(s.Columns)
	for i := 0; i <= s.Columns; i++ {
		x := e.X + float32(i)*colStep
		faces[s.Rows+1+i] = geometry.ColoredQuad(geometry.Extent{X: x - s.LineWidth/2, Y: e.Bottom(), Width: s.LineWidth, Height: e.Height}, s.Color)
	}
	return sp, nil
}
