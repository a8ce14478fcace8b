package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	for name, want := range map[string]Kind{
		"a.mp3":     KindAudio,
		"B.FLAC":    KindAudio,
		"c.wav":     KindAudio,
		"cover.jpg": KindUnknown,
		"notes":     KindUnknown,
	} {
		assert.Equal(t, want, KindOf(name), name)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func names(items []Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestNavigator(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp3"))
	touch(t, filepath.Join(root, "A.wav"))
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, ".hidden.mp3"))
	touch(t, filepath.Join(root, "Zed", "track.flac"))
	touch(t, filepath.Join(root, "alpha", "x.mp3"))

	n, err := NewNavigator(root)
	require.NoError(t, err)
	assert.True(t, n.AtRoot())
	assert.Equal(t, []string{"alpha", "Zed", "A.wav", "b.mp3"}, names(n.List()))
	assert.Equal(t, KindDirectory, n.List()[1].Kind)

	require.NoError(t, n.Enter(1))
	assert.False(t, n.AtRoot())
	assert.Equal(t, []string{"track.flac"}, names(n.List()))
	assert.Equal(t, filepath.Join(n.Root(), "Zed", "track.flac"), n.List()[0].Path)

	assert.ErrorIs(t, n.Enter(0), limits.ErrInvalidArgument)
	assert.ErrorIs(t, n.Enter(5), limits.ErrInvalidArgument)

	require.NoError(t, n.Up())
	assert.True(t, n.AtRoot())
	require.NoError(t, n.Up())
	assert.Equal(t, n.Root(), n.Dir())
}

func TestNavigatorNormalisesNames(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Cafe\u0301.mp3"))
	n, err := NewNavigator(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Caf\u00e9.mp3"}, names(n.List()))
}

func TestNavigatorMissingRoot(t *testing.T) {
	_, err := NewNavigator(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnterFailureKeepsDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "gone", "a.mp3"))
	n, err := NewNavigator(root)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "gone")))
	assert.Error(t, n.Enter(0))
	assert.Equal(t, n.Root(), n.Dir())
	assert.Len(t, n.List(), 1)
}
