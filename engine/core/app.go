package core

import (
	"time"

	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error        // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick (Config.FrameRate)
	OnRender(e *Engine)             // after every tick that ran updates
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	start    time.Time
	quit     bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Quit ends the loop after the current frame.
func (e *Engine) Quit() { e.quit = true }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer draws the face store. Faces are uploaded only when they change;
// DrawFaces draws the first count faces of the last upload.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	UploadTexture(w, h int, rgba []byte) error
	UploadFaces(faces []geometry.Face) error
	DrawFaces(count int)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventMouseMove is in window pixels, origin top-left.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyBackspace
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	FrameRate  int
	ClearColor colors.Color
}
