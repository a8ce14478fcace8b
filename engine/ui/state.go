package ui

import (
	"slices"

	"github.com/kdchambers/music-player-sub001/engine/action"
	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/event"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// State owns every table the UI is rebuilt into. It is created once at
// startup and cleared before each rebuild; the UI thread is its only user.
type State struct {
	Limits limits.Limits

	Store         *arena.Store
	Writer        *arena.Writer
	InactiveStore *arena.Store
	Inactive      *arena.Writer

	Events  *event.Registry
	Actions *action.Table
	Ranges  *action.VertexRanges
	Palette *colors.Palette

	dispatcher *action.Dispatcher
	dirty      bool
}

// NewState preallocates every table at the sizes in l.
func NewState(l limits.Limits, h action.Handler) (*State, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		Limits:        l,
		Store:         arena.NewStore(l.Faces),
		InactiveStore: arena.NewStore(l.InactiveFaces),
		Events:        event.NewRegistry(l.Events, l.Extents, l.Triggered),
		Actions:       action.NewTable(l.Actions),
		Ranges:        action.NewVertexRanges(l.VertexRanges),
		Palette:       colors.NewPalette(l.Colors),
		dirty:         true,
	}
	var err error
	if s.Writer, err = arena.NewWriter(s.Store, 0, l.Faces); err != nil {
		return nil, err
	}
	if s.Inactive, err = arena.NewWriter(s.InactiveStore, 0, l.InactiveFaces); err != nil {
		return nil, err
	}
	s.dispatcher = &action.Dispatcher{
		Table:    s.Actions,
		Ranges:   s.Ranges,
		Palette:  s.Palette,
		Main:     s.Store,
		Inactive: s.InactiveStore,
		Handler:  h,
	}
	return s, nil
}

// ClearAll resets the tables and both writer cursors ahead of a rebuild.
func (s *State) ClearAll() {
	s.Events.Clear()
	s.Actions.Clear()
	s.Ranges.Clear()
	s.Palette.Clear()
	s.Writer.Reset()
	s.Inactive.Reset()
	s.dirty = true
}

// Faces is the whole main store; only the first UsedFaceCount are live.
func (s *State) Faces() []geometry.Face { return s.Store.Faces() }

// UsedFaceCount is how many faces the renderer should draw.
func (s *State) UsedFaceCount() int { return s.Writer.Used() }

// HitTest returns the event IDs triggered by m.
func (s *State) HitTest(m event.MouseState) []event.ID {
	return s.Events.HitTest(s.Limits.Triggered, m)
}

// Dispatch runs the action bound to id. IDs past the end of the action
// table have nothing bound and are ignored.
func (s *State) Dispatch(id event.ID) error {
	if int(id) >= s.Actions.Len() {
		return nil
	}
	mutated, err := s.dispatcher.Do(int(id))
	if mutated {
		s.dirty = true
	}
	return err
}

// DispatchAll runs ids in order, stopping at the first error.
func (s *State) DispatchAll(ids []event.ID) error {
	for _, id := range ids {
		if err := s.Dispatch(id); err != nil {
			return errors.Wrapf(err, "dispatch event %d", id)
		}
	}
	return nil
}

// Update hit-tests m and dispatches everything it triggers.
func (s *State) Update(m event.MouseState) ([]event.ID, error) {
	ids := s.HitTest(m)
	return ids, s.DispatchAll(ids)
}

func (s *State) Dirty() bool { return s.dirty }
func (s *State) MarkDirty()  { s.dirty = true }
func (s *State) ClearDirty() { s.dirty = false }

// Bind stores a at action index id, padding any gap with None so indices keep
// matching event IDs. Nothing is appended when the table cannot hold id.
func (s *State) Bind(id event.ID, a action.Action) error {
	if id < 0 {
		return errors.Wrapf(limits.ErrInvalidArgument, "bind to event %d", id)
	}
	if err := action.Validate(a); err != nil {
		return err
	}
	if int(id) < s.Actions.Len() {
		return s.Actions.Set(int(id), a)
	}
	if int(id) >= s.Actions.Cap() {
		return limits.Exhausted("actions", s.Actions.Cap(), int(id)+1)
	}
	for s.Actions.Len() < int(id) {
		if _, err := s.Actions.Append(action.None{}); err != nil {
			return err
		}
	}
	_, err := s.Actions.Append(a)
	return err
}

// need is the table space a wiring helper consumes.
type need struct {
	events, extents, actions, ranges, colors int
}

// reserve fails unless every table has room for n, so the helpers below
// either complete or leave the state untouched.
func (s *State) reserve(n need) error {
	events, extents := s.Events.Capacity()
	switch {
	case s.Events.Len()+n.events > events:
		return limits.Exhausted("events", events, s.Events.Len()+n.events)
	case s.Events.ExtentCount()+n.extents > extents:
		return limits.Exhausted("extents", extents, s.Events.ExtentCount()+n.extents)
	case s.Actions.Len()+n.actions > s.Actions.Cap():
		return limits.Exhausted("actions", s.Actions.Cap(), s.Actions.Len()+n.actions)
	case s.Ranges.Len()+n.ranges > s.Ranges.Cap():
		return limits.Exhausted("vertex ranges", s.Ranges.Cap(), s.Ranges.Len()+n.ranges)
	case s.Palette.Len()+n.colors > s.Palette.Cap():
		return limits.Exhausted("palette", s.Palette.Cap(), s.Palette.Len()+n.colors)
	}
	return nil
}

// actionsFor is how many action slots binding the next n events takes,
// padding included.
func (s *State) actionsFor(n int) int {
	return max(0, s.Events.Len()+n-s.Actions.Len())
}

// newColors counts the distinct colors in cs not yet interned.
func (s *State) newColors(cs ...colors.Color) int {
	n := 0
	for i, c := range cs {
		if _, ok := s.Palette.Index(c); ok || slices.Contains(cs[:i], c) {
			continue
		}
		n++
	}
	return n
}

// OnClick runs a when the left button is released over e.
func (s *State) OnClick(e geometry.Extent, a action.Action) (event.ID, error) {
	if err := action.Validate(a); err != nil {
		return 0, err
	}
	if err := s.reserve(need{events: 1, extents: 1, actions: s.actionsFor(1)}); err != nil {
		return 0, err
	}
	id, err := s.Events.RegisterMouseLeftRelease(e)
	if err != nil {
		return 0, err
	}
	return id, s.Bind(id, a)
}

// HoverColor recolors the faces in sp to hover while the cursor is over e and
// back to normal when it leaves.
func (s *State) HoverColor(sp arena.Span, e geometry.Extent, normal, hover colors.Color) (event.ReflexivePair, error) {
	r := action.VertexRange{Begin: sp.Start, Count: sp.Count}
	if err := r.Validate(); err != nil {
		return event.ReflexivePair{}, err
	}
	err := s.reserve(need{
		events:  2,
		extents: 1,
		actions: s.actionsFor(2),
		ranges:  1,
		colors:  s.newColors(normal, hover),
	})
	if err != nil {
		return event.ReflexivePair{}, err
	}

	normalIdx, err := s.Palette.Intern(normal)
	if err != nil {
		return event.ReflexivePair{}, err
	}
	hoverIdx, err := s.Palette.Intern(hover)
	if err != nil {
		return event.ReflexivePair{}, err
	}
	rangeIdx, err := s.Ranges.Append(r)
	if err != nil {
		return event.ReflexivePair{}, err
	}
	pair, err := s.Events.RegisterMouseHoverReflexive(e)
	if err != nil {
		return event.ReflexivePair{}, err
	}
	if err := s.Bind(pair.Enter, action.ColorSet{RangeBegin: rangeIdx, RangeSpan: 1, ColorIndex: hoverIdx}); err != nil {
		return event.ReflexivePair{}, err
	}
	if err := s.Bind(pair.Exit, action.ColorSet{RangeBegin: rangeIdx, RangeSpan: 1, ColorIndex: normalIdx}); err != nil {
		return event.ReflexivePair{}, err
	}
	return pair, nil
}

// Toggle writes a two-state widget over e. Clicking it swaps the states and
// then raises Custom{ID: custom} so the application can react.
func (s *State) Toggle(e geometry.Extent, shown, hidden Generator, reserve, custom int) (event.ID, event.ID, error) {
	if err := s.reserve(need{events: 2, extents: 2, actions: s.actionsFor(2)}); err != nil {
		return 0, 0, err
	}
	payload, err := Toggle(s.Writer, s.Inactive, shown, hidden, reserve)
	if err != nil {
		return 0, 0, err
	}
	swapID, err := s.OnClick(e, payload)
	if err != nil {
		return 0, 0, err
	}
	customID, err := s.OnClick(e, action.Custom{ID: custom})
	if err != nil {
		return 0, 0, err
	}
	return swapID, customID, nil
}
