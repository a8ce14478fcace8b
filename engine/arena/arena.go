// Package arena is a bump allocator over a pre-sized face store.
//
// Widgets are generated in order and occupy contiguous faces, so generation
// order is memory order. Writers hand out explicit spans instead of letting
// callers derive indices from addresses.
package arena

import (
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Span is a contiguous run of faces in a Store.
type Span struct {
	Start int
	Count int
}

func (s Span) End() int { return s.Start + s.Count }

// Store is the backing memory shared by every writer created over it.
type Store struct {
	faces []geometry.Face
}

func NewStore(capacity int) *Store {
	return &Store{faces: make([]geometry.Face, capacity)}
}

func (s *Store) Capacity() int { return len(s.faces) }

// Faces exposes the whole backing slice.
func (s *Store) Faces() []geometry.Face { return s.faces }

// Slice returns the faces covered by sp.
func (s *Store) Slice(sp Span) ([]geometry.Face, error) {
	if sp.Start < 0 || sp.Count < 0 || sp.End() > len(s.faces) {
		return nil, errors.Wrapf(limits.ErrInvalidArgument, "span [%d,%d) outside store of %d", sp.Start, sp.End(), len(s.faces))
	}
	return s.faces[sp.Start:sp.End():sp.End()], nil
}

// Writer hands out consecutive faces of [base, base+capacity).
// Writers over the same Store may alias; callers reserve ranges before
// creating children so they never overlap in practice.
type Writer struct {
	store    *Store
	base     int
	capacity int
	used     int
}

// NewWriter anchors a writer at base with room for capacity faces.
func NewWriter(store *Store, base, capacity int) (*Writer, error) {
	if base < 0 || capacity < 0 || base+capacity > store.Capacity() {
		return nil, errors.Wrapf(limits.ErrInvalidArgument, "writer [%d,%d) outside store of %d", base, base+capacity, store.Capacity())
	}
	return &Writer{store: store, base: base, capacity: capacity}, nil
}

// Allocate reserves the next n faces. It fails without side effects when
// fewer than n remain.
func (w *Writer) Allocate(n int) (Span, []geometry.Face, error) {
	if n < 0 {
		return Span{}, nil, errors.Wrapf(limits.ErrInvalidArgument, "allocate %d faces", n)
	}
	if w.used+n > w.capacity {
		return Span{}, nil, limits.Exhausted("face writer", w.capacity, w.used+n)
	}
	start := w.base + w.used
	w.used += n
	return Span{Start: start, Count: n}, w.store.faces[start : start+n : start+n], nil
}

// Create allocates a single face and returns its store index.
func (w *Writer) Create() (int, *geometry.Face, error) {
	sp, faces, err := w.Allocate(1)
	if err != nil {
		return 0, nil, err
	}
	return sp.Start, &faces[0], nil
}

// Child derives a writer over [start, start+count) relative to w's base. Its
// cursor is independent of w's.
func (w *Writer) Child(start, count int) (*Writer, error) {
	if start < 0 || count < 0 || start+count > w.capacity {
		return nil, errors.Wrapf(limits.ErrInvalidArgument, "child [%d,%d) outside writer of %d", start, start+count, w.capacity)
	}
	return &Writer{store: w.store, base: w.base + start, capacity: count}, nil
}

// ChildSpan derives a writer over an absolute span of the store, typically
// one returned by an earlier generator.
func (w *Writer) ChildSpan(sp Span) (*Writer, error) {
	return w.Child(sp.Start-w.base, sp.Count)
}

func (w *Writer) Remaining() int { return w.capacity - w.used }
func (w *Writer) Used() int      { return w.used }
func (w *Writer) Capacity() int  { return w.capacity }
func (w *Writer) Base() int      { return w.base }
func (w *Writer) Store() *Store  { return w.store }

// Reset rewinds the cursor. Face memory is left as is.
func (w *Writer) Reset() { w.used = 0 }

// Mark returns the store index of the next face to be written.
func (w *Writer) Mark() int { return w.base + w.used }

// Rewind releases every face allocated after mark. Face memory is left as is.
func (w *Writer) Rewind(mark int) error {
	if mark < w.base || mark > w.Mark() {
		return errors.Wrapf(limits.ErrInvalidArgument, "rewind to %d outside [%d,%d]", mark, w.base, w.Mark())
	}
	w.used = mark - w.base
	return nil
}

// Since returns the span written after mark.
func (w *Writer) Since(mark int) Span {
	return Span{Start: mark, Count: w.Mark() - mark}
}

// Fill writes NullFace into every remaining face.
func (w *Writer) Fill() (Span, error) {
	sp, faces, err := w.Allocate(w.Remaining())
	if err != nil {
		return Span{}, err
	}
	for i := range faces {
		faces[i] = geometry.NullFace
	}
	return sp, nil
}
