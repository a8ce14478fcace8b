package action

import (
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Table stores actions by index. Appends only; cleared wholesale on rebuild.
type Table struct {
	actions []Action
}

func NewTable(capacity int) *Table {
	return &Table{actions: make([]Action, 0, capacity)}
}

// Append validates a and returns the index it was stored at.
func (t *Table) Append(a Action) (int, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if len(t.actions) == cap(t.actions) {
		return 0, limits.Exhausted("actions", cap(t.actions), len(t.actions)+1)
	}
	t.actions = append(t.actions, a)
	return len(t.actions) - 1, nil
}

// At returns the action stored at i.
func (t *Table) At(i int) (Action, error) {
	if i < 0 || i >= len(t.actions) {
		return nil, errors.Wrapf(limits.ErrInvalidArgument, "action %d of %d", i, len(t.actions))
	}
	return t.actions[i], nil
}

// Set replaces the payload stored at an existing index.
func (t *Table) Set(i int, a Action) error {
	if i < 0 || i >= len(t.actions) {
		return errors.Wrapf(limits.ErrInvalidArgument, "action %d of %d", i, len(t.actions))
	}
	if err := Validate(a); err != nil {
		return err
	}
	t.actions[i] = a
	return nil
}

func (t *Table) Len() int { return len(t.actions) }
func (t *Table) Cap() int { return cap(t.actions) }

func (t *Table) Clear() { t.actions = t.actions[:0] }

// VertexRanges is the fixed table ColorSet payloads index into.
type VertexRanges struct {
	ranges []VertexRange
}

func NewVertexRanges(capacity int) *VertexRanges {
	return &VertexRanges{ranges: make([]VertexRange, 0, capacity)}
}

func (v *VertexRanges) Append(r VertexRange) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if len(v.ranges) == cap(v.ranges) {
		return 0, limits.Exhausted("vertex ranges", cap(v.ranges), len(v.ranges)+1)
	}
	v.ranges = append(v.ranges, r)
	return len(v.ranges) - 1, nil
}

func (v *VertexRanges) At(i int) (VertexRange, error) {
	if i < 0 || i >= len(v.ranges) {
		return VertexRange{}, errors.Wrapf(limits.ErrInvalidArgument, "vertex range %d of %d", i, len(v.ranges))
	}
	return v.ranges[i], nil
}

func (v *VertexRanges) Len() int { return len(v.ranges) }
func (v *VertexRanges) Cap() int { return cap(v.ranges) }

func (v *VertexRanges) Clear() { v.ranges = v.ranges[:0] }
