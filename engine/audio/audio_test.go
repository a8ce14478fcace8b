package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](3)
	assert.True(t, q.Push(1))
	assert.True(t, q.Push(2))
	assert.True(t, q.Push(3))
	assert.False(t, q.Push(4))
	assert.Equal(t, 3, q.Len())

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, q.Push(4))
	assert.Equal(t, []int{2, 3, 4}, q.Drain(nil))

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueConcurrentProducer(t *testing.T) {
	const n = 10000
	q := NewQueue[int](16)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; {
			if q.Push(i) {
				i++
			}
		}
	}()

	got := make([]int, 0, n)
	for len(got) < n {
		got = q.Drain(got)
	}
	wg.Wait()
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func tone(frames, rate, channels int) *PCM {
	p := &PCM{SampleRate: rate, Channels: channels, Samples: make([]int16, frames*channels)}
	for i := range p.Samples {
		p.Samples[i] = int16(i*37 - 1000)
	}
	return p
}

func TestWAVRoundTrip(t *testing.T) {
	in := tone(50, 8000, 2)
	var buf bytes.Buffer
	require.NoError(t, EncodeWAV(&buf, in))
	assert.Equal(t, 44+200, buf.Len())

	out, err := DecodeWAV(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 50, out.Frames())
	assert.InDelta(t, 50.0/8000, out.Seconds(), 1e-9)
}

func TestWAVSkipsUnknownChunks(t *testing.T) {
	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, le, uint32(0)))
	buf.WriteString("WAVE")
	buf.WriteString("LIST")
	require.NoError(t, binary.Write(&buf, le, uint32(3)))
	buf.Write([]byte{1, 2, 3, 0}) // odd size is padded
	buf.WriteString("fmt ")
	require.NoError(t, binary.Write(&buf, le, uint32(18)))
	require.NoError(t, binary.Write(&buf, le, fmtChunk{Format: 1, Channels: 1, SampleRate: 44100, ByteRate: 88200, BlockAlign: 2, BitsPerSample: 16}))
	buf.Write([]byte{0, 0})
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, le, uint32(4)))
	require.NoError(t, binary.Write(&buf, le, []int16{7, -7}))

	p, err := DecodeWAV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 44100, p.SampleRate)
	assert.Equal(t, 1, p.Channels)
	assert.Equal(t, []int16{7, -7}, p.Samples)
}

func TestWAVRejects(t *testing.T) {
	_, err := DecodeWAV(bytes.NewReader([]byte("RIFF\x00\x00\x00\x00AVI ")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var buf bytes.Buffer
	buf.WriteString("RIFF\x00\x00\x00\x00WAVEfmt ")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, fmtChunk{Format: 1, Channels: 1, SampleRate: 8000, BitsPerSample: 8}))
	_, err = DecodeWAV(&buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile("song.flac")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

type instantSink struct{}

func (instantSink) Write(context.Context, []int16, int, int) error { return nil }

func kinds(q *Queue[Event]) []EventKind {
	var out []EventKind
	for _, e := range q.Drain(nil) {
		out = append(out, e.Kind)
	}
	return out
}

func TestWorkerPlaysToEnd(t *testing.T) {
	w := NewWorker(Options{
		Sink: instantSink{},
		Load: func(string) (*PCM, error) { return tone(100, 1000, 1), nil },
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, w.Play("a.wav"))
	var got []EventKind
	require.Eventually(t, func() bool {
		got = append(got, kinds(w.Events())...)
		return len(got) > 0 && got[len(got)-1] == EventFinished
	}, time.Second, time.Millisecond)
	assert.Equal(t, []EventKind{EventStarted, EventDuration, EventFinished}, got)
	assert.Equal(t, Stopped, w.State())
	assert.InDelta(t, 0.1, w.SecondsPlayed(), 1e-9)
	assert.InDelta(t, 0.1, w.TrackLengthSeconds(), 1e-9)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkerPauseResumeStop(t *testing.T) {
	w := NewWorker(Options{Load: func(string) (*PCM, error) { return tone(10*8000, 8000, 1), nil }})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	assert.ErrorIs(t, w.Pause(), ErrNoSource)
	require.NoError(t, w.Play("long.wav"))
	require.Eventually(t, func() bool { return w.State() == Playing }, time.Second, time.Millisecond)

	require.NoError(t, w.Pause())
	require.Eventually(t, func() bool { return w.State() == Paused }, time.Second, time.Millisecond)
	require.NoError(t, w.Resume())
	require.Eventually(t, func() bool { return w.State() == Playing }, time.Second, time.Millisecond)
	require.NoError(t, w.Stop())

	var got []EventKind
	require.Eventually(t, func() bool {
		got = append(got, kinds(w.Events())...)
		return len(got) > 0 && got[len(got)-1] == EventStopped
	}, time.Second, time.Millisecond)
	assert.Equal(t, []EventKind{EventStarted, EventDuration, EventPaused, EventResumed, EventStopped}, got)
	assert.Equal(t, Stopped, w.State())
}

func TestWorkerLoadFailure(t *testing.T) {
	w := NewWorker(Options{Load: func(string) (*PCM, error) { return nil, ErrUnsupportedFormat }})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, w.Play("x.mp3"))
	var ev Event
	require.Eventually(t, func() bool {
		var ok bool
		ev, ok = w.Events().Pop()
		return ok
	}, time.Second, time.Millisecond)
	assert.Equal(t, EventFailed, ev.Kind)
	assert.ErrorIs(t, ev.Err, ErrUnsupportedFormat)
	assert.Equal(t, Stopped, w.State())
}

func TestWorkerCommandsNeverBlock(t *testing.T) {
	w := NewWorker(Options{Commands: 1})
	require.NoError(t, w.Play("a.wav"))
	assert.ErrorIs(t, w.Play("b.wav"), ErrBusy)
}
