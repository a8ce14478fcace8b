package audio

import "sync/atomic"

// Queue is a fixed-capacity single-producer single-consumer ring. One
// goroutine may Push while another Pops; neither ever blocks.
type Queue[T any] struct {
	head atomic.Uint64 // next slot to read, owned by the consumer
	tail atomic.Uint64 // next slot to write, owned by the producer
	cap  uint64
	buf  []T
}

func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue[T]{cap: uint64(capacity), buf: make([]T, capacity)}
}

// Push appends v and reports false when the ring is full.
func (q *Queue[T]) Push(v T) bool {
	t := q.tail.Load()
	if t-q.head.Load() == q.cap {
		return false
	}
	q.buf[t%q.cap] = v
	q.tail.Store(t + 1)
	return true
}

// Pop removes the oldest value.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	h := q.head.Load()
	if h == q.tail.Load() {
		return zero, false
	}
	v := q.buf[h%q.cap]
	q.buf[h%q.cap] = zero
	q.head.Store(h + 1)
	return v, true
}

// Drain pops everything available now, oldest first, into dst.
func (q *Queue[T]) Drain(dst []T) []T {
	for {
		v, ok := q.Pop()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

func (q *Queue[T]) Len() int { return int(q.tail.Load() - q.head.Load()) }
func (q *Queue[T]) Cap() int { return int(q.cap) }
