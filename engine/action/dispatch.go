package action

import (
	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/pkg/errors"
)

// MaxSwapFaces bounds an UpdateVertices exchange; it is the largest count the
// payload can express.
const MaxSwapFaces = MaxSwapCount

// Handler receives the actions that leave the UI core.
type Handler interface {
	PlayTrack(id int) error
	PausePlayback() error
	ResumePlayback() error
	SelectDirectory(id int) error
	Custom(id int) error
}

// Dispatcher executes table entries against the face stores.
type Dispatcher struct {
	Table    *Table
	Ranges   *VertexRanges
	Palette  *colors.Palette
	Main     *arena.Store
	Inactive *arena.Store
	Handler  Handler

	scratch [MaxSwapFaces]geometry.Face
}

// Do runs the action at index. mutated reports whether face memory changed
// and needs to be uploaded again.
//
// Handler failures are logged and swallowed: the UI keeps its previous state.
func (d *Dispatcher) Do(index int) (mutated bool, err error) {
	a, err := d.Table.At(index)
	if err != nil {
		return false, err
	}
	switch v := a.(type) {
	case None:
		return false, nil
	case ColorSet:
		return true, d.setColor(v)
	case UpdateVertices:
		if err := d.swap(v); err != nil {
			return false, err
		}
		v.LoadedCount, v.AlternateCount = v.AlternateCount, v.LoadedCount
		return true, d.Table.Set(index, v)
	case AudioPlay:
		d.delegate(index, "play", d.handler().PlayTrack(v.TrackID))
	case AudioPause:
		d.delegate(index, "pause", d.handler().PausePlayback())
	case AudioResume:
		d.delegate(index, "resume", d.handler().ResumePlayback())
	case DirectorySelect:
		d.delegate(index, "directory", d.handler().SelectDirectory(v.DirID))
	case Custom:
		d.delegate(index, "custom", d.handler().Custom(v.ID))
	}
	return false, nil
}

// DoAll runs every index in order and stops at the first core error.
func (d *Dispatcher) DoAll(indices []int) (mutated bool, err error) {
	for _, i := range indices {
		m, err := d.Do(i)
		if err != nil {
			return mutated, err
		}
		mutated = mutated || m
	}
	return mutated, nil
}

func (d *Dispatcher) setColor(v ColorSet) error {
	c, err := d.Palette.At(v.ColorIndex)
	if err != nil {
		return err
	}
	faces := d.Main.Faces()
	for i := v.RangeBegin; i < v.RangeBegin+v.RangeSpan; i++ {
		r, err := d.Ranges.At(i)
		if err != nil {
			return err
		}
		if r.Begin+r.Count > len(faces) {
			return errors.Wrapf(limits.ErrInvalidArgument, "vertex range %+v outside store of %d", r, len(faces))
		}
		for f := r.Begin; f < r.Begin+r.Count; f++ {
			faces[f].SetColor(c)
		}
	}
	return nil
}

// swap exchanges the displayed faces with the stashed ones. Both regions
// must hold max(LoadedCount, AlternateCount) faces; the shorter side is
// filled with null faces so nothing stale stays visible.
func (d *Dispatcher) swap(v UpdateVertices) error {
	largest := max(v.LoadedCount, v.AlternateCount)
	if largest > MaxSwapFaces {
		return errors.Wrapf(limits.ErrInvalidArgument, "swap of %d faces exceeds %d", largest, MaxSwapFaces)
	}
	loaded, err := d.Main.Slice(arena.Span{Start: v.LoadedBegin, Count: largest})
	if err != nil {
		return err
	}
	alternate, err := d.Inactive.Slice(arena.Span{Start: v.AlternateBegin, Count: largest})
	if err != nil {
		return err
	}

	for i := 0; i < largest; i++ {
		d.scratch[i] = loaded[i]
		if i < v.AlternateCount {
			loaded[i] = alternate[i]
		} else {
			loaded[i] = geometry.NullFace
		}
	}
	for i := 0; i < largest; i++ {
		if i < v.LoadedCount {
			alternate[i] = d.scratch[i]
		} else {
			alternate[i] = geometry.NullFace
		}
	}
	return nil
}

func (d *Dispatcher) handler() Handler {
	if d.Handler == nil {
		return nopHandler{}
	}
	return d.Handler
}

func (d *Dispatcher) delegate(index int, what string, err error) {
	if err != nil {
		logging.Logger().Warn("action failed", "action", index, "kind", what, "err", err)
	}
}

type nopHandler struct{}

func (nopHandler) PlayTrack(int) error       { return nil }
func (nopHandler) PausePlayback() error      { return nil }
func (nopHandler) ResumePlayback() error     { return nil }
func (nopHandler) SelectDirectory(int) error { return nil }
func (nopHandler) Custom(int) error          { return nil }
