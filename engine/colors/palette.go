package colors

import (
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

// Palette interns colors by value so repeated theme colors share one slot.
// Lookup is a linear scan; palettes stay in the tens of entries.
type Palette struct {
	list []Color
}

func NewPalette(capacity int) *Palette {
	return &Palette{list: make([]Color, 0, capacity)}
}

// Index finds c without interning it.
func (p *Palette) Index(c Color) (int, bool) {
	for i, have := range p.list {
		if have == c {
			return i, true
		}
	}
	return 0, false
}

// Intern returns the index of c, appending it when not yet present.
func (p *Palette) Intern(c Color) (int, error) {
	if i, ok := p.Index(c); ok {
		return i, nil
	}
	if len(p.list) == cap(p.list) {
		return 0, limits.Exhausted("palette", cap(p.list), len(p.list)+1)
	}
	p.list = append(p.list, c)
	return len(p.list) - 1, nil
}

// At returns the color stored at index i.
func (p *Palette) At(i int) (Color, error) {
	if i < 0 || i >= len(p.list) {
		return Color{}, errors.Wrapf(limits.ErrInvalidArgument, "palette index %d of %d", i, len(p.list))
	}
	return p.list[i], nil
}

func (p *Palette) Len() int { return len(p.list) }
func (p *Palette) Cap() int { return cap(p.list) }

// Clear drops every entry, keeping the storage.
func (p *Palette) Clear() { p.list = p.list[:0] }
