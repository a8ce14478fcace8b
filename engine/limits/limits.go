// Package limits names the fixed capacities of the UI tables and the error
// classes shared by everything that appends into them.
package limits

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfMemory is returned when a fixed-capacity table or face writer
	// cannot hold the requested entries.
	ErrOutOfMemory = errors.New("limits: out of memory")

	// ErrInvalidArgument marks programmer errors: out of range indices,
	// payloads that exceed their field widths, content wider than the space
	// reserved for it.
	ErrInvalidArgument = errors.New("limits: invalid argument")
)

// CapacityError reports which table overflowed.
type CapacityError struct {
	Table     string
	Capacity  int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("limits: %s out of memory (capacity %d, requested %d)", e.Table, e.Capacity, e.Requested)
}

// Is lets errors.Is(err, ErrOutOfMemory) match.
func (e *CapacityError) Is(target error) bool { return target == ErrOutOfMemory }

// Exhausted builds a CapacityError for table.
func Exhausted(table string, capacity, requested int) error {
	return &CapacityError{Table: table, Capacity: capacity, Requested: requested}
}

// Limits are the capacities every UiState table is created with. Nothing
// grows past these during a frame.
type Limits struct {
	Faces         int `toml:"faces"`
	InactiveFaces int `toml:"inactive_faces"`
	Events        int `toml:"events"`
	Extents       int `toml:"extents"`
	Actions       int `toml:"actions"`
	VertexRanges  int `toml:"vertex_ranges"`
	Colors        int `toml:"colors"`
	Triggered     int `toml:"triggered"`
}

// Default mirrors the sizes the player screens were tuned against.
func Default() Limits {
	return Limits{
		Faces:         1024,
		InactiveFaces: 64,
		Events:        50,
		Extents:       40,
		Actions:       50,
		VertexRanges:  40,
		Colors:        30,
		Triggered:     16,
	}
}

// Validate rejects non-positive capacities.
func (l Limits) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"faces", l.Faces},
		{"inactive_faces", l.InactiveFaces},
		{"events", l.Events},
		{"extents", l.Extents},
		{"actions", l.Actions},
		{"vertex_ranges", l.VertexRanges},
		{"colors", l.Colors},
		{"triggered", l.Triggered},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return errors.Wrapf(ErrInvalidArgument, "limit %s must be positive, got %d", c.name, c.v)
		}
	}
	return nil
}
