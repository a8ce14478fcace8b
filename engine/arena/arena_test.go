package arena

import (
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWriter(t *testing.T, capacity int) *Writer {
	t.Helper()
	w, err := NewWriter(NewStore(capacity), 0, capacity)
	require.NoError(t, err)
	return w
}

func TestAllocateMonotonic(t *testing.T) {
	w := newWriter(t, 10)
	prev := w.Used()
	for _, n := range []int{1, 3, 0, 2, 4} {
		sp, faces, err := w.Allocate(n)
		require.NoError(t, err)
		assert.Len(t, faces, n)
		assert.Equal(t, prev, sp.Start)
		assert.GreaterOrEqual(t, w.Used(), prev)
		prev = w.Used()
	}
	assert.Equal(t, 10, w.Used())
	assert.Equal(t, 0, w.Remaining())

	_, _, err := w.Allocate(1)
	assert.ErrorIs(t, err, limits.ErrOutOfMemory)
	assert.Equal(t, 10, w.Used(), "failed allocation must not move the cursor")
}

func TestCapacityBoundary(t *testing.T) {
	for used := 0; used <= 6; used++ {
		w := newWriter(t, 6)
		_, _, err := w.Allocate(used)
		require.NoError(t, err)

		_, _, err = w.Allocate(w.Capacity() - w.Used() + 1)
		assert.ErrorIs(t, err, limits.ErrOutOfMemory, "used=%d", used)

		_, _, err = w.Allocate(w.Remaining())
		assert.NoError(t, err, "used=%d", used)
	}
}

func TestResetAllowsFullAllocation(t *testing.T) {
	w := newWriter(t, 4)
	_, f, err := w.Create()
	require.NoError(t, err)
	*f = geometry.ColoredQuad(geometry.Extent{Width: 1, Height: 1}, colors.Red)

	w.Reset()
	assert.Equal(t, 0, w.Used())
	_, faces, err := w.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, colors.Red, faces[0][0].Color, "reset does not zero memory")
}

func TestFaceOrdering(t *testing.T) {
	w := newWriter(t, 8)

	first, _, err := w.Allocate(3)
	require.NoError(t, err)
	second, _, err := w.Allocate(2)
	require.NoError(t, err)

	assert.Less(t, first.Start, second.Start)
	assert.Equal(t, first.End(), second.Start, "no gaps between consecutive widgets")
}

func TestChildWriterAliasesStore(t *testing.T) {
	store := NewStore(8)
	parent, err := NewWriter(store, 2, 6)
	require.NoError(t, err)

	reserved, _, err := parent.Allocate(3)
	require.NoError(t, err)
	assert.Equal(t, Span{Start: 2, Count: 3}, reserved)

	child, err := parent.ChildSpan(reserved)
	require.NoError(t, err)
	assert.Equal(t, 0, child.Used())
	assert.Equal(t, 3, child.Remaining())

	idx, f, err := child.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	*f = geometry.ColoredQuad(geometry.Extent{Width: 1, Height: 1}, colors.Blue)

	assert.Equal(t, colors.Blue, store.Faces()[2][0].Color)
	assert.Equal(t, 3, parent.Used(), "child cursor is independent")

	_, err = parent.Child(5, 2)
	assert.ErrorIs(t, err, limits.ErrInvalidArgument)
}

func TestMarkSinceAndFill(t *testing.T) {
	w := newWriter(t, 5)
	_, faces, err := w.Allocate(5)
	require.NoError(t, err)
	for i := range faces {
		faces[i] = geometry.ColoredQuad(geometry.Extent{Width: 1, Height: 1}, colors.Red)
	}

	w.Reset()
	_, _, err = w.Allocate(1)
	require.NoError(t, err)
	mark := w.Mark()
	_, _, err = w.Allocate(2)
	require.NoError(t, err)
	assert.Equal(t, Span{Start: 1, Count: 2}, w.Since(mark))

	sp, err := w.Fill()
	require.NoError(t, err)
	assert.Equal(t, Span{Start: 3, Count: 2}, sp)
	got, err := w.Store().Slice(sp)
	require.NoError(t, err)
	for _, f := range got {
		assert.Equal(t, geometry.NullFace, f)
	}
}

func TestRewind(t *testing.T) {
	w := newWriter(t, 6)
	_, _, err := w.Allocate(2)
	require.NoError(t, err)
	mark := w.Mark()
	_, _, err = w.Allocate(3)
	require.NoError(t, err)

	require.NoError(t, w.Rewind(mark))
	assert.Equal(t, 2, w.Used())
	assert.Equal(t, 4, w.Remaining())

	assert.ErrorIs(t, w.Rewind(w.Mark()+1), limits.ErrInvalidArgument)
	assert.ErrorIs(t, w.Rewind(w.Base()-1), limits.ErrInvalidArgument)
	assert.Equal(t, 2, w.Used())
}

func TestInvalidRanges(t *testing.T) {
	store := NewStore(4)
	_, err := NewWriter(store, 2, 3)
	assert.ErrorIs(t, err, limits.ErrInvalidArgument)

	w := newWriter(t, 4)
	_, _, err = w.Allocate(-1)
	assert.ErrorIs(t, err, limits.ErrInvalidArgument)

	_, err = store.Slice(Span{Start: 3, Count: 2})
	assert.ErrorIs(t, err, limits.ErrInvalidArgument)
}
