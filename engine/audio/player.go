// Package audio runs playback on its own goroutine and reports back to the
// UI thread through a lock-free queue. Nothing here touches face memory.
package audio

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/pkg/errors"
)

var (
	ErrNoSource = errors.New("audio: no source loaded")
	ErrBusy     = errors.New("audio: command queue full")
)

// Player is what the UI needs from playback.
type Player interface {
	State() PlaybackState
	SecondsPlayed() float64
	TrackLengthSeconds() float64
	Play(path string) error
	Pause() error
	Resume() error
	Stop() error
}

// Sink consumes PCM at playback speed. Write blocks until the chunk has
// been played or ctx is done.
type Sink interface {
	Write(ctx context.Context, samples []int16, sampleRate, channels int) error
}

// NullSink discards audio in real time.
type NullSink struct{}

func (NullSink) Write(ctx context.Context, samples []int16, sampleRate, channels int) error {
	if sampleRate <= 0 || channels <= 0 {
		return nil
	}
	d := time.Duration(len(samples)/channels) * time.Second / time.Duration(sampleRate)
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Loader decodes the file at path.
type Loader func(path string) (*PCM, error)

// LoadFile decodes WAV files. Compressed formats are recognised but not
// decoded here.
func LoadFile(path string) (*PCM, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open track")
		}
		defer f.Close()
		pcm, err := DecodeWAV(f)
		return pcm, errors.Wrapf(err, "decode %s", filepath.Base(path))
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "no decoder for %s", filepath.Base(path))
	}
}

type commandKind int

const (
	cmdPlay commandKind = iota
	cmdPause
	cmdResume
	cmdStop
)

type command struct {
	kind commandKind
	path string
}

// Options configure a Worker. Zero values select defaults.
type Options struct {
	Sink     Sink
	Load     Loader
	Events   int           // event queue capacity
	Commands int           // command channel capacity
	Chunk    time.Duration // audio written per Sink call
}

// Worker is a Player backed by a goroutine started with Run.
type Worker struct {
	sink   Sink
	load   Loader
	chunk  time.Duration
	events *Queue[Event]
	cmds   chan command

	state  atomic.Int32
	played atomic.Uint64 // frames
	rate   atomic.Uint64
	length atomic.Uint64 // float64 bits, seconds

	pcm  *PCM
	pos  int // sample offset into pcm
	path string
}

func NewWorker(o Options) *Worker {
	if o.Sink == nil {
		o.Sink = NullSink{}
	}
	if o.Load == nil {
		o.Load = LoadFile
	}
	if o.Events <= 0 {
		o.Events = 32
	}
	if o.Commands <= 0 {
		o.Commands = 4
	}
	if o.Chunk <= 0 {
		o.Chunk = 20 * time.Millisecond
	}
	return &Worker{
		sink:   o.Sink,
		load:   o.Load,
		chunk:  o.Chunk,
		events: NewQueue[Event](o.Events),
		cmds:   make(chan command, o.Commands),
	}
}

// Events is drained by the UI thread once per frame.
func (w *Worker) Events() *Queue[Event] { return w.events }

func (w *Worker) State() PlaybackState { return PlaybackState(w.state.Load()) }

func (w *Worker) SecondsPlayed() float64 {
	rate := w.rate.Load()
	if rate == 0 {
		return 0
	}
	return float64(w.played.Load()) / float64(rate)
}

func (w *Worker) TrackLengthSeconds() float64 { return math.Float64frombits(w.length.Load()) }

func (w *Worker) Play(path string) error { return w.send(command{kind: cmdPlay, path: path}) }

func (w *Worker) Pause() error {
	if w.State() == Stopped {
		return ErrNoSource
	}
	return w.send(command{kind: cmdPause})
}

func (w *Worker) Resume() error {
	if w.State() == Stopped {
		return ErrNoSource
	}
	return w.send(command{kind: cmdResume})
}

func (w *Worker) Stop() error {
	if w.State() == Stopped {
		return ErrNoSource
	}
	return w.send(command{kind: cmdStop})
}

func (w *Worker) send(c command) error {
	select {
	case w.cmds <- c:
		return nil
	default:
		return ErrBusy
	}
}

// Run plays until ctx is cancelled. It is the only producer
// into the event queue.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if w.State() != Playing {
			select {
			case <-ctx.Done():
				return nil
			case c := <-w.cmds:
				w.handle(c)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case c := <-w.cmds:
			w.handle(c)
			continue
		default:
		}
		if err := w.step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.fail(err)
		}
	}
}

func (w *Worker) step(ctx context.Context) error {
	p := w.pcm
	frames := max(1, int(float64(p.SampleRate)*w.chunk.Seconds()))
	end := min(len(p.Samples), w.pos+frames*p.Channels)
	if err := w.sink.Write(ctx, p.Samples[w.pos:end], p.SampleRate, p.Channels); err != nil {
		return errors.Wrap(err, "sink write")
	}
	w.played.Add(uint64((end - w.pos) / p.Channels))
	w.pos = end
	if w.pos >= len(p.Samples) {
		w.unload()
		w.emit(Event{Kind: EventFinished, Path: w.path})
	}
	return nil
}

func (w *Worker) handle(c command) {
	switch c.kind {
	case cmdPlay:
		pcm, err := w.load(c.path)
		if err != nil {
			w.emit(Event{Kind: EventFailed, Path: c.path, Err: err})
			return
		}
		w.pcm, w.pos, w.path = pcm, 0, c.path
		w.played.Store(0)
		w.rate.Store(uint64(pcm.SampleRate))
		w.length.Store(math.Float64bits(pcm.Seconds()))
		w.state.Store(int32(Playing))
		w.emit(Event{Kind: EventStarted, Path: c.path})
		w.emit(Event{Kind: EventDuration, Path: c.path, Seconds: pcm.Seconds()})
	case cmdPause:
		if w.State() == Playing {
			w.state.Store(int32(Paused))
			w.emit(Event{Kind: EventPaused, Path: w.path})
		}
	case cmdResume:
		if w.State() == Paused {
			w.state.Store(int32(Playing))
			w.emit(Event{Kind: EventResumed, Path: w.path})
		}
	case cmdStop:
		if w.pcm != nil {
			w.unload()
			w.emit(Event{Kind: EventStopped, Path: w.path})
		}
	}
}

func (w *Worker) unload() {
	w.pcm, w.pos = nil, 0
	w.state.Store(int32(Stopped))
}

func (w *Worker) fail(err error) {
	w.unload()
	w.emit(Event{Kind: EventFailed, Path: w.path, Err: err})
}

func (w *Worker) emit(e Event) {
	if !w.events.Push(e) {
		logging.Logger().Warn("audio event dropped, queue full", "event", e.Kind.String(), "path", e.Path)
	}
}
