package colors

import (
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"000000", Black},
		{"#ff000080", Color{1, 0, 0, float32(0x80) / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.ErrorIs(t, err, limits.ErrInvalidArgument, bad)
	}
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 0.25}, Red.WithAlpha(0.25))
	assert.Equal(t, float32(1), Red[3], "receiver must not change")
}

func TestPaletteInterns(t *testing.T) {
	p := NewPalette(3)
	a, err := p.Intern(Red)
	require.NoError(t, err)
	b, err := p.Intern(Blue)
	require.NoError(t, err)
	again, err := p.Intern(Red)
	require.NoError(t, err)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, p.Len())

	c, err := p.At(b)
	require.NoError(t, err)
	assert.Equal(t, Blue, c)

	_, err = p.At(5)
	assert.ErrorIs(t, err, limits.ErrInvalidArgument)
}

func TestPaletteCapacity(t *testing.T) {
	p := NewPalette(2)
	_, err := p.Intern(Red)
	require.NoError(t, err)
	_, err = p.Intern(Green)
	require.NoError(t, err)

	_, err = p.Intern(Blue)
	assert.ErrorIs(t, err, limits.ErrOutOfMemory)

	// Existing colors still resolve when full.
	i, err := p.Intern(Green)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	p.Clear()
	assert.Equal(t, 0, p.Len())
	_, err = p.Intern(Blue)
	assert.NoError(t, err)
}
