// Package renderer2d presents a face store through a core.Renderer.
package renderer2d

import (
	"github.com/kdchambers/music-player-sub001/engine/core"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/pkg/errors"
)

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// QuadIndices builds the static index buffer for capacity faces. Each face
// is split into TL,TR,BR and BR,BL,TL.
func QuadIndices(capacity int) []uint32 {
	out := make([]uint32, 0, capacity*indsPerQuad)
	for i := 0; i < capacity; i++ {
		b := uint32(i * vertsPerQuad)
		out = append(out,
			b+geometry.TopLeft, b+geometry.TopRight, b+geometry.BottomRight,
			b+geometry.BottomRight, b+geometry.BottomLeft, b+geometry.TopLeft,
		)
	}
	return out
}

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
	Uploads   int // face uploads since the presenter was created
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Source is the retained face memory to present.
type Source interface {
	Faces() []geometry.Face
	UsedFaceCount() int
	Dirty() bool
	ClearDirty()
}

// Presenter uploads faces only when the source changed and draws the used
// prefix every frame.
type Presenter struct {
	r     core.Renderer
	stats Statistics
}

func New(r core.Renderer) *Presenter { return &Presenter{r: r} }

// Present draws src; the caller has already cleared the frame.
func (p *Presenter) Present(src Source) error {
	used := src.UsedFaceCount()
	if src.Dirty() {
		if err := p.r.UploadFaces(src.Faces()[:used]); err != nil {
			return errors.Wrap(err, "upload faces")
		}
		src.ClearDirty()
		p.stats.Uploads++
	}
	p.stats.DrawCalls, p.stats.QuadCount = 0, used
	if used > 0 {
		p.r.DrawFaces(used)
		p.stats.DrawCalls = 1
	}
	return nil
}

// Stats returns the current frame statistics snapshot.
func (p *Presenter) Stats() Statistics { return p.stats }
