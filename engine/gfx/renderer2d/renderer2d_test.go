package renderer2d

import (
	"testing"

	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/kdchambers/music-player-sub001/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadIndices(t *testing.T) {
	idx := QuadIndices(2)
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}, idx)
	assert.Empty(t, QuadIndices(0))
}

type recorder struct {
	uploads [][]geometry.Face
	draws   []int
}

func (r *recorder) Resize(int, int)                      {}
func (r *recorder) Clear(colors.Color)                   {}
func (r *recorder) UploadTexture(int, int, []byte) error { return nil }
func (r *recorder) UploadFaces(f []geometry.Face) error {
	r.uploads = append(r.uploads, append([]geometry.Face(nil), f...))
	return nil
}
func (r *recorder) DrawFaces(n int) { r.draws = append(r.draws, n) }
func (r *recorder) Shutdown()       {}

func TestPresenterUploadsOnlyWhenDirty(t *testing.T) {
	s, err := ui.NewState(limits.Default(), nil)
	require.NoError(t, err)
	_, err = ui.ProgressBar(s.Writer, ui.ProgressStyle{Extent: geometry.Extent{Width: 1, Height: 0.1}, Progress: 0.5})
	require.NoError(t, err)

	rec := &recorder{}
	p := New(rec)
	require.NoError(t, p.Present(s))
	require.NoError(t, p.Present(s))

	require.Len(t, rec.uploads, 1)
	assert.Len(t, rec.uploads[0], 2)
	assert.Equal(t, []int{2, 2}, rec.draws)
	assert.Equal(t, Statistics{DrawCalls: 1, QuadCount: 2, Uploads: 1}, p.Stats())
	assert.Equal(t, 12, p.Stats().TotalIndexCount())
	assert.Equal(t, 8, p.Stats().TotalVertexCount())

	s.ClearAll()
	require.NoError(t, p.Present(s))
	assert.Len(t, rec.uploads, 2)
	assert.Equal(t, []int{2, 2}, rec.draws)
	assert.Equal(t, 0, p.Stats().DrawCalls)
}
