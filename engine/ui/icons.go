package ui

import (
	"github.com/kdchambers/music-player-sub001/engine/action"
	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Generator writes a widget into w.
type Generator func(w *arena.Writer) (arena.Span, error)

// PlayIcon is a right-pointing triangle filling e.
func PlayIcon(e geometry.Extent, c colors.Color) Generator {
	return func(w *arena.Writer) (arena.Span, error) {
		i, f, err := w.Create()
		if err != nil {
			return arena.Span{}, err
		}
		*f = geometry.Triangle(
			geometry.Point{X: e.Left(), Y: e.Top()},
			geometry.Point{X: e.Right(), Y: e.Top() + e.Height/2},
			geometry.Point{X: e.Left(), Y: e.Bottom()},
			c,
		)
		return arena.Span{Start: i, Count: 1}, nil
	}
}

// PauseIcon is two vertical bars, each a third of e wide.
func PauseIcon(e geometry.Extent, c colors.Color) Generator {
	return func(w *arena.Writer) (arena.Span, error) {
		sp, faces, err := w.Allocate(2)
		if err != nil {
			return arena.Span{}, err
		}
		bar := e.Width / 3
		faces[0] = geometry.ColoredQuad(geometry.Extent{X: e.X, Y: e.Y, Width: bar, Height: e.Height}, c)
		faces[1] = geometry.ColoredQuad(geometry.Extent{X: e.Right() - bar, Y: e.Y, Width: bar, Height: e.Height}, c)
		return sp, nil
	}
}

// Toggle reserves reserve faces in both writers, generates shown into main
// and hidden into inactive, and blanks the unused tail of each. The returned
// payload swaps the two states; running it again swaps them back. On error
// both writers are rewound to where they were.
func Toggle(main, inactive *arena.Writer, shown, hidden Generator, reserve int) (p action.UpdateVertices, err error) {
	if reserve < 1 || reserve > action.MaxSwapFaces {
		return action.UpdateVertices{}, errors.Wrapf(limits.ErrInvalidArgument, "toggle reserve %d outside [1,%d]", reserve, action.MaxSwapFaces)
	}
	if main.Remaining() < reserve {
		return action.UpdateVertices{}, limits.Exhausted("face writer", main.Capacity(), main.Used()+reserve)
	}
	if inactive.Remaining() < reserve {
		return action.UpdateVertices{}, limits.Exhausted("inactive faces", inactive.Capacity(), inactive.Used()+reserve)
	}

	mainMark, inactiveMark := main.Mark(), inactive.Mark()
	defer func() {
		if err != nil {
			// marks come from these writers; Rewind cannot fail
			_ = main.Rewind(mainMark)
			_ = inactive.Rewind(inactiveMark)
		}
	}()
	loaded, loadedN, err := reserveAndGenerate(main, shown, reserve)
	if err != nil {
		return action.UpdateVertices{}, err
	}
	alternate, alternateN, err := reserveAndGenerate(inactive, hidden, reserve)
	if err != nil {
		return action.UpdateVertices{}, err
	}
	p = action.UpdateVertices{
		LoadedBegin:    loaded.Start,
		AlternateBegin: alternate.Start,
		LoadedCount:    loadedN,
		AlternateCount: alternateN,
	}
	if err := action.Validate(p); err != nil {
		return action.UpdateVertices{}, err
	}
	return p, nil
}

func reserveAndGenerate(w *arena.Writer, gen Generator, reserve int) (arena.Span, int, error) {
	sp, _, err := w.Allocate(reserve)
	if err != nil {
		return arena.Span{}, 0, err
	}
	child, err := w.ChildSpan(sp)
	if err != nil {
		return arena.Span{}, 0, err
	}
	written, err := gen(child)
	if err != nil {
		return arena.Span{}, 0, err
	}
	if _, err := child.Fill(); err != nil {
		return arena.Span{}, 0, err
	}
	return sp, written.Count, nil
}
