// Package scratch builds short per-frame strings without allocating.
package scratch

import (
	"strconv"
	"unsafe"
)

// Buffer is a reusable byte buffer. Reset it once per frame; strings from
// View are valid until the next Reset or append.
type Buffer struct{ buf []byte }

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 64
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() *Buffer {
	b.buf = b.buf[:0]
	return b
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// Pad appends n copies of byte c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for ; n > 0; n-- {
		b.buf = append(b.buf, c)
	}
	return b
}

// Clock appends seconds as m:ss. Negative values clamp to 0:00.
func (b *Buffer) Clock(seconds float64) *Buffer {
	total := int(max(seconds, 0))
	b.I(total / 60).C(':')
	if s := total % 60; s < 10 {
		b.C('0')
	}
	return b.I(total % 60)
}

// String is a safe copy.
func (b *Buffer) String() string { return string(b.buf) }

// View is a zero-copy string over the buffer.
func (b *Buffer) View() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}
