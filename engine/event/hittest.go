package event

import (
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/logging"
)

// MouseState is the input sampled for one update.
type MouseState struct {
	Cursor geometry.Point
	Left   bool // held
	Right  bool // held
}

// HitTest walks every registered event in registration order and returns the
// IDs that fire for m, in that order. At most min(maxEvents, the registry's
// triggered capacity) IDs are returned.
//
// Edge events (releases and reflexive transitions) are admitted before level
// events (presses and hover enter/exit), so held buttons or hover-exit over a
// crowded screen cannot starve them. A reflexive pair that does not fit keeps
// its state and fires on a later update; a release that does not fit is
// dropped.
//
// The returned slice is owned by the registry and valid until the next call.
func (r *Registry) HitTest(maxEvents int, m MouseState) []ID {
	limit := max(0, min(maxEvents, r.maxTriggered))
	out := r.triggered[:0]

	leftReleased := r.prevLeft && !m.Left
	rightReleased := r.prevRight && !m.Right
	r.prevLeft, r.prevRight = m.Left, m.Right

	fired := 0
	edges := 0
	for i := range r.events {
		ok, edge := r.fires(i, m, leftReleased, rightReleased)
		if ok {
			fired++
			if edge {
				edges++
			}
		}
	}
	edges = min(edges, limit)
	levels := limit - edges
	if fired > limit {
		logging.Logger().Debug("hit-test truncated", "limit", limit, "fired", fired)
	}

	for i := range r.events {
		ok, edge := r.fires(i, m, leftReleased, rightReleased)
		if !ok {
			continue
		}
		if !edge {
			if levels > 0 {
				levels--
				out = append(out, ID(i))
			}
			continue
		}
		if edges == 0 {
			continue
		}
		edges--
		ev := &r.events[i]
		switch ev.kind {
		case HoverReflexiveEnter:
			ev.kind = HoverReflexiveExit
			out = append(out, ID(i))
		case HoverReflexiveExit:
			ev.kind = HoverReflexiveEnter
			out = append(out, ID(i)+1)
		default:
			out = append(out, ID(i))
		}
	}
	r.triggered = out
	return out
}

// fires reports whether event i triggers for m and whether it is an edge event.
func (r *Registry) fires(i int, m MouseState, leftReleased, rightReleased bool) (ok, edge bool) {
	ev := r.events[i]
	inside := r.extents[ev.attachment].Contains(m.Cursor)
	switch ev.kind {
	case MouseLeftPress:
		return inside && m.Left, false
	case MouseLeftRelease:
		return inside && leftReleased, true
	case MouseRightPress:
		return inside && m.Right, false
	case MouseRightRelease:
		return inside && rightReleased, true
	case HoverEnter:
		return inside, false
	case HoverExit:
		return !inside, false
	case HoverReflexiveEnter:
		return inside, true
	case HoverReflexiveExit:
		return !inside, true
	}
	return false, false
}
