package event

import (
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	box     = geometry.Extent{X: -0.5, Y: 0.5, Width: 1, Height: 1}
	inside  = geometry.Point{X: 0, Y: 0}
	outside = geometry.Point{X: 0.9, Y: 0.9}
)

func TestIDsAreDense(t *testing.T) {
	r := NewRegistry(10, 10, 10)
	a, err := r.RegisterMouseLeftPress(box)
	require.NoError(t, err)
	pair, err := r.RegisterMouseHoverReflexive(box)
	require.NoError(t, err)
	b, err := r.RegisterMouseHoverEnter(box)
	require.NoError(t, err)

	assert.Equal(t, ID(0), a)
	assert.Equal(t, ReflexivePair{Enter: 1, Exit: 2}, pair)
	assert.Equal(t, ID(3), b)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 3, r.ExtentCount(), "a reflexive pair shares one extent")

	r.Clear()
	c, err := r.RegisterMouseHoverExit(box)
	require.NoError(t, err)
	assert.Equal(t, ID(0), c)
}

func TestReflexiveHoverIsEdgeTriggered(t *testing.T) {
	r := NewRegistry(4, 4, 4)
	pair, err := r.RegisterMouseHoverReflexive(box)
	require.NoError(t, err)

	steps := []struct {
		cursor geometry.Point
		want   []ID
		state  Kind
	}{
		{inside, []ID{pair.Enter}, HoverReflexiveExit},
		{inside, nil, HoverReflexiveExit},
		{outside, []ID{pair.Exit}, HoverReflexiveEnter},
		{outside, nil, HoverReflexiveEnter},
		{inside, []ID{pair.Enter}, HoverReflexiveExit},
	}
	for i, s := range steps {
		got := r.HitTest(4, MouseState{Cursor: s.cursor})
		if s.want == nil {
			assert.Empty(t, got, "step %d", i)
		} else {
			assert.Equal(t, s.want, got, "step %d", i)
		}
		assert.Equal(t, s.state, r.Kind(pair.Enter), "step %d", i)
	}
}

func TestLevelTriggeredKinds(t *testing.T) {
	r := NewRegistry(8, 8, 8)
	press, err := r.RegisterMouseLeftPress(box)
	require.NoError(t, err)
	enter, err := r.RegisterMouseHoverEnter(box)
	require.NoError(t, err)
	exit, err := r.RegisterMouseHoverExit(box)
	require.NoError(t, err)
	rpress, err := r.RegisterMouseRightPress(box)
	require.NoError(t, err)

	assert.Equal(t, []ID{enter}, r.HitTest(8, MouseState{Cursor: inside}))
	assert.Equal(t, []ID{enter}, r.HitTest(8, MouseState{Cursor: inside}), "hover-enter fires every frame")
	assert.Equal(t, []ID{press, enter}, r.HitTest(8, MouseState{Cursor: inside, Left: true}))
	assert.Equal(t, []ID{press, enter}, r.HitTest(8, MouseState{Cursor: inside, Left: true}), "press is level-triggered")
	assert.Equal(t, []ID{enter, rpress}, r.HitTest(8, MouseState{Cursor: inside, Right: true}))
	assert.Equal(t, []ID{exit}, r.HitTest(8, MouseState{Cursor: outside, Left: true}))
}

func TestReleaseFiresOnce(t *testing.T) {
	r := NewRegistry(4, 4, 4)
	left, err := r.RegisterMouseLeftRelease(box)
	require.NoError(t, err)
	right, err := r.RegisterMouseRightRelease(box)
	require.NoError(t, err)

	assert.Empty(t, r.HitTest(4, MouseState{Cursor: inside, Left: true}))
	assert.Equal(t, []ID{left}, r.HitTest(4, MouseState{Cursor: inside}))
	assert.Empty(t, r.HitTest(4, MouseState{Cursor: inside}))

	assert.Empty(t, r.HitTest(4, MouseState{Cursor: outside, Right: true}))
	assert.Empty(t, r.HitTest(4, MouseState{Cursor: outside}), "released outside the extent")

	assert.Empty(t, r.HitTest(4, MouseState{Cursor: inside, Right: true}))
	assert.Equal(t, []ID{right}, r.HitTest(4, MouseState{Cursor: inside}))
}

func TestHitTestTruncates(t *testing.T) {
	r := NewRegistry(8, 8, 8)
	first, err := r.RegisterMouseHoverEnter(box)
	require.NoError(t, err)
	second, err := r.RegisterMouseHoverEnter(box)
	require.NoError(t, err)
	pair, err := r.RegisterMouseHoverReflexive(box)
	require.NoError(t, err)

	got := r.HitTest(2, MouseState{Cursor: inside})
	assert.Equal(t, []ID{first, pair.Enter}, got, "edge events are admitted before level events")
	assert.Equal(t, HoverReflexiveExit, r.Kind(pair.Enter))

	got = r.HitTest(3, MouseState{Cursor: inside})
	assert.Equal(t, []ID{first, second}, got)
}

func TestLevelEventsDoNotStarveReflexive(t *testing.T) {
	far := geometry.Extent{X: 0.8, Y: 0.95, Width: 0.1, Height: 0.1}
	screen := geometry.Extent{X: -1, Y: 1, Width: 2, Height: 2}
	r := NewRegistry(50, 40, 4)
	for i := 0; i < 4; i++ {
		_, err := r.RegisterMouseHoverExit(far)
		require.NoError(t, err)
	}
	pair, err := r.RegisterMouseHoverReflexive(screen)
	require.NoError(t, err)

	got := r.HitTest(4, MouseState{Cursor: inside})
	assert.Equal(t, []ID{0, 1, 2, pair.Enter}, got)
	assert.Equal(t, HoverReflexiveExit, r.Kind(pair.Enter))

	got = r.HitTest(4, MouseState{Cursor: inside})
	assert.Equal(t, []ID{0, 1, 2, 3}, got)

	got = r.HitTest(4, MouseState{Cursor: geometry.Point{X: 2, Y: 2}})
	assert.Equal(t, []ID{0, 1, 2, pair.Exit}, got)
	assert.Equal(t, HoverReflexiveEnter, r.Kind(pair.Enter))
}

func TestEdgeEventsPastCapWaitForLaterUpdate(t *testing.T) {
	r := NewRegistry(8, 8, 8)
	a, err := r.RegisterMouseHoverReflexive(box)
	require.NoError(t, err)
	b, err := r.RegisterMouseHoverReflexive(box)
	require.NoError(t, err)

	assert.Equal(t, []ID{a.Enter}, r.HitTest(1, MouseState{Cursor: inside}))
	assert.Equal(t, HoverReflexiveEnter, r.Kind(b.Enter), "pair past the cap keeps its state")
	assert.Equal(t, []ID{b.Enter}, r.HitTest(1, MouseState{Cursor: inside}))
}

func TestRegistryCapacity(t *testing.T) {
	t.Run("events", func(t *testing.T) {
		r := NewRegistry(3, 8, 4)
		_, err := r.RegisterMouseLeftPress(box)
		require.NoError(t, err)
		_, err = r.RegisterMouseHoverReflexive(box)
		require.NoError(t, err)
		_, err = r.RegisterMouseLeftPress(box)
		assert.ErrorIs(t, err, limits.ErrOutOfMemory)
	})

	t.Run("reflexive needs two slots", func(t *testing.T) {
		r := NewRegistry(2, 8, 4)
		_, err := r.RegisterMouseLeftPress(box)
		require.NoError(t, err)
		_, err = r.RegisterMouseHoverReflexive(box)
		assert.ErrorIs(t, err, limits.ErrOutOfMemory)
		assert.Equal(t, 1, r.ExtentCount(), "failed registration leaves no extent behind")
	})

	t.Run("extents", func(t *testing.T) {
		r := NewRegistry(8, 1, 4)
		_, err := r.RegisterMouseLeftPress(box)
		require.NoError(t, err)
		_, err = r.RegisterMouseHoverEnter(box)
		assert.ErrorIs(t, err, limits.ErrOutOfMemory)
		assert.Equal(t, 1, r.Len())
	})
}

func TestExtentLookup(t *testing.T) {
	r := NewRegistry(2, 2, 2)
	id, err := r.RegisterMouseLeftPress(box)
	require.NoError(t, err)
	e, ok := r.Extent(id)
	require.True(t, ok)
	assert.Equal(t, box, e)

	_, ok = r.Extent(5)
	assert.False(t, ok)
	assert.Equal(t, KindNone, r.Kind(5))
	assert.Equal(t, "mouse-left-press", MouseLeftPress.String())
}
