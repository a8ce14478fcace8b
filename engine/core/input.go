package core

import (
	"github.com/kdchambers/music-player-sub001/engine/event"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
)

// Input accumulates window events between updates.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mouseX, mouseY float64
	width, height  int
}

func NewInput(w, h int) *Input { return &Input{keys: map[Key]bool{}, width: w, height: h} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
	case EventResize:
		in.width, in.height = e.W, e.H
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return int(b) < len(in.buttons) && in.buttons[b] }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }
func (in *Input) Size() (int, int)                { return in.width, in.height }

// MouseState converts the cursor to NDC for hit-testing.
func (in *Input) MouseState() event.MouseState {
	return event.MouseState{
		Cursor: geometry.PixelToNDC(in.mouseX, in.mouseY, in.width, in.height),
		Left:   in.buttons[MouseLeft],
		Right:  in.buttons[MouseRight],
	}
}
