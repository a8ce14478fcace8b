// Package action models the commands run when an event fires and applies
// them to the face stores.
package action

import (
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Field ranges carried over from the packed payload layout. They bound how
// far into the stores a payload can reach.
const (
	MaxLoadedBegin    = 1<<10 - 1
	MaxAlternateBegin = 1<<6 - 1
	MaxSwapCount      = 1<<4 - 1
	MaxRangeBegin     = 1<<24 - 1
	MaxRangeCount     = 1<<8 - 1
)

// Action is one of the payload types below.
type Action interface{ isAction() }

// None does nothing; it pads the table so action indices line up with event IDs.
type None struct{}

// ColorSet recolors every face referenced by the vertex ranges
// [RangeBegin, RangeBegin+RangeSpan).
type ColorSet struct {
	RangeBegin int
	RangeSpan  int
	ColorIndex int
}

// UpdateVertices exchanges the faces shown at LoadedBegin in the main store
// with the faces stashed at AlternateBegin in the inactive store. Counts are
// in faces. Running it swaps the counts, so running it again undoes it.
type UpdateVertices struct {
	LoadedBegin    int
	AlternateBegin int
	LoadedCount    int
	AlternateCount int
}

type AudioPlay struct{ TrackID int }

type AudioPause struct{}

type AudioResume struct{}

type DirectorySelect struct{ DirID int }

// Custom is routed to the application by ID.
type Custom struct{ ID int }

func (None) isAction()            {}
func (ColorSet) isAction()        {}
func (UpdateVertices) isAction()  {}
func (AudioPlay) isAction()       {}
func (AudioPause) isAction()      {}
func (AudioResume) isAction()     {}
func (DirectorySelect) isAction() {}
func (Custom) isAction()          {}

// Validate checks the payload against its field ranges.
func Validate(a Action) error {
	switch v := a.(type) {
	case nil:
		return errors.Wrap(limits.ErrInvalidArgument, "nil action")
	case ColorSet:
		if v.RangeBegin < 0 || v.RangeSpan < 1 || v.ColorIndex < 0 {
			return errors.Wrapf(limits.ErrInvalidArgument, "color set %+v", v)
		}
	case UpdateVertices:
		switch {
		case v.LoadedBegin < 0 || v.LoadedBegin > MaxLoadedBegin:
			return errors.Wrapf(limits.ErrInvalidArgument, "loaded begin %d exceeds %d", v.LoadedBegin, MaxLoadedBegin)
		case v.AlternateBegin < 0 || v.AlternateBegin > MaxAlternateBegin:
			return errors.Wrapf(limits.ErrInvalidArgument, "alternate begin %d exceeds %d", v.AlternateBegin, MaxAlternateBegin)
		case v.LoadedCount < 0 || v.LoadedCount > MaxSwapCount,
			v.AlternateCount < 0 || v.AlternateCount > MaxSwapCount:
			return errors.Wrapf(limits.ErrInvalidArgument, "swap counts %d/%d exceed %d", v.LoadedCount, v.AlternateCount, MaxSwapCount)
		}
	}
	return nil
}

// VertexRange is an indirection used by ColorSet: Count faces starting at
// face Begin of the main store.
type VertexRange struct {
	Begin int
	Count int
}

// Validate checks r against the packed field ranges.
func (r VertexRange) Validate() error {
	if r.Begin < 0 || r.Begin > MaxRangeBegin || r.Count < 0 || r.Count > MaxRangeCount {
		return errors.Wrapf(limits.ErrInvalidArgument, "vertex range %+v", r)
	}
	return nil
}
