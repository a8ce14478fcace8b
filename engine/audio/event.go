package audio

import "fmt"

type PlaybackState int32

const (
	Stopped PlaybackState = iota
	Paused
	Playing
)

func (s PlaybackState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "stopped"
	}
}

type EventKind int

const (
	EventStarted EventKind = iota
	EventDuration
	EventPaused
	EventResumed
	EventStopped
	EventFinished
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventDuration:
		return "duration"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event reports a playback change to the UI thread.
type Event struct {
	Kind    EventKind
	Path    string
	Seconds float64 // track length for EventDuration
	Err     error   // set for EventFailed
}
