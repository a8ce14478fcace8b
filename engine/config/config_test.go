package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, limits.Default(), cfg.Limits)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "musicplayer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
library = "/music"

[window]
width = 1024
frame_rate = 60

[limits]
faces = 2048

[theme]
hover = "#ff0000"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/music", cfg.Library)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.FrameRate)
	assert.Equal(t, 2048, cfg.Limits.Faces)
	assert.Equal(t, limits.Default().Events, cfg.Limits.Events)

	p, err := cfg.Theme.Parse()
	require.NoError(t, err)
	assert.Equal(t, colors.Red, p.Hover)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"syntax": "[window\n",
		"limits": "[limits]\nevents = 0\n",
		"theme":  "[theme]\ntext = \"blue\"\n",
		"window": "[window]\nheight = -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
