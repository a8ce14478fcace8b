// Package event keeps the fixed tables of hit regions and the event kinds
// attached to them, and turns a mouse update into the list of triggered IDs.
package event

import (
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/kdchambers/music-player-sub001/engine/logging"
)

// Kind selects the condition an event fires on.
type Kind uint8

const (
	KindNone Kind = iota
	MouseLeftPress
	MouseLeftRelease
	MouseRightPress
	MouseRightRelease
	HoverEnter
	HoverExit
	HoverReflexiveEnter
	HoverReflexiveExit
)

func (k Kind) String() string {
	switch k {
	case MouseLeftPress:
		return "mouse-left-press"
	case MouseLeftRelease:
		return "mouse-left-release"
	case MouseRightPress:
		return "mouse-right-press"
	case MouseRightRelease:
		return "mouse-right-release"
	case HoverEnter:
		return "hover-enter"
	case HoverExit:
		return "hover-exit"
	case HoverReflexiveEnter:
		return "hover-reflexive-enter"
	case HoverReflexiveExit:
		return "hover-reflexive-exit"
	default:
		return "none"
	}
}

// ID indexes the event table. By convention the action at the same index is
// what the event triggers.
type ID int

// ReflexivePair names the two slots of a reflexive hover registration.
// Exit is always Enter+1.
type ReflexivePair struct {
	Enter ID
	Exit  ID
}

type registered struct {
	kind       Kind
	attachment int
}

// Registry is the event table plus the extent table its rows point into.
type Registry struct {
	events       []registered
	extents      []geometry.Extent
	triggered    []ID
	maxTriggered int

	prevLeft, prevRight bool
}

// NewRegistry preallocates every table; no allocation happens afterwards.
func NewRegistry(maxEvents, maxExtents, maxTriggered int) *Registry {
	return &Registry{
		events:       make([]registered, 0, maxEvents),
		extents:      make([]geometry.Extent, 0, maxExtents),
		triggered:    make([]ID, 0, maxTriggered),
		maxTriggered: maxTriggered,
	}
}

// Clear drops all registrations. IDs restart from 0. The previous button
// state is kept so a release straddling a rebuild still fires.
func (r *Registry) Clear() {
	r.events = r.events[:0]
	r.extents = r.extents[:0]
	r.triggered = r.triggered[:0]
}

// Len is the number of event slots in use.
func (r *Registry) Len() int { return len(r.events) }

// Capacity returns the sizes of the event and extent tables.
func (r *Registry) Capacity() (events, extents int) { return cap(r.events), cap(r.extents) }

// ExtentCount is the number of extents in use.
func (r *Registry) ExtentCount() int { return len(r.extents) }

// Kind returns the current kind stored in slot id. For a reflexive pair
// this is the hover state.
func (r *Registry) Kind(id ID) Kind {
	if id < 0 || int(id) >= len(r.events) {
		return KindNone
	}
	return r.events[id].kind
}

// Extent returns the hit region attached to id.
func (r *Registry) Extent(id ID) (geometry.Extent, bool) {
	if id < 0 || int(id) >= len(r.events) {
		return geometry.Extent{}, false
	}
	return r.extents[r.events[id].attachment], true
}

func (r *Registry) RegisterMouseLeftPress(e geometry.Extent) (ID, error) {
	return r.register(MouseLeftPress, e)
}

func (r *Registry) RegisterMouseLeftRelease(e geometry.Extent) (ID, error) {
	return r.register(MouseLeftRelease, e)
}

func (r *Registry) RegisterMouseRightPress(e geometry.Extent) (ID, error) {
	return r.register(MouseRightPress, e)
}

func (r *Registry) RegisterMouseRightRelease(e geometry.Extent) (ID, error) {
	return r.register(MouseRightRelease, e)
}

func (r *Registry) RegisterMouseHoverEnter(e geometry.Extent) (ID, error) {
	return r.register(HoverEnter, e)
}

func (r *Registry) RegisterMouseHoverExit(e geometry.Extent) (ID, error) {
	return r.register(HoverExit, e)
}

// RegisterMouseHoverReflexive reserves two consecutive slots sharing one
// extent. The first slot carries the hover state; the second only exists so
// the exit action has its own ID.
func (r *Registry) RegisterMouseHoverReflexive(e geometry.Extent) (ReflexivePair, error) {
	if len(r.events)+2 > cap(r.events) {
		return ReflexivePair{}, limits.Exhausted("events", cap(r.events), len(r.events)+2)
	}
	attachment, err := r.attach(e)
	if err != nil {
		return ReflexivePair{}, err
	}
	enter := ID(len(r.events))
	r.events = append(r.events,
		registered{kind: HoverReflexiveEnter, attachment: attachment},
		registered{kind: KindNone, attachment: attachment},
	)
	return ReflexivePair{Enter: enter, Exit: enter + 1}, nil
}

func (r *Registry) register(kind Kind, e geometry.Extent) (ID, error) {
	if len(r.events) == cap(r.events) {
		return 0, limits.Exhausted("events", cap(r.events), len(r.events)+1)
	}
	attachment, err := r.attach(e)
	if err != nil {
		return 0, err
	}
	r.events = append(r.events, registered{kind: kind, attachment: attachment})
	logging.Logger().Debug("event registered", "id", len(r.events)-1, "kind", kind)
	return ID(len(r.events) - 1), nil
}

func (r *Registry) attach(e geometry.Extent) (int, error) {
	if len(r.extents) == cap(r.extents) {
		return 0, limits.Exhausted("extents", cap(r.extents), len(r.extents)+1)
	}
	r.extents = append(r.extents, e)
	return len(r.extents) - 1, nil
}
