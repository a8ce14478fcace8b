package main

import (
	"image"
	"path/filepath"

	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/assets"
	"github.com/kdchambers/music-player-sub001/engine/audio"
	"github.com/kdchambers/music-player-sub001/engine/config"
	"github.com/kdchambers/music-player-sub001/engine/core"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/gfx/renderer2d"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/kdchambers/music-player-sub001/engine/media"
	"github.com/kdchambers/music-player-sub001/engine/scratch"
	"github.com/kdchambers/music-player-sub001/engine/text"
	"github.com/kdchambers/music-player-sub001/engine/ui"
	"github.com/pkg/errors"
)

// Screen regions in NDC, y pointing down.
var (
	headerArea = geometry.Extent{X: -0.96, Y: -0.82, Width: 1.92, Height: 0.14}
	listArea   = geometry.Extent{X: -0.96, Y: 0.66, Width: 1.92, Height: 1.44}
	footerArea = geometry.Extent{X: -0.96, Y: 0.96, Width: 1.92, Height: 0.26}
)

const (
	rowHeight = 0.09
	rowGap    = 0.01
	// each row: hover pair + click
	eventsPerRow  = 3
	extentsPerRow = 2
	// header and footer registrations
	reservedEvents  = 6
	reservedExtents = 4

	toggleFaces   = 2
	upLabel       = "Up"
	labelFaces    = 48 // title and status text
	progressFaces = 2
	// faces outside the list: toggle, up button, title, clock, bar, status
	reservedFaces = toggleFaces + 1 + len(upLabel) + labelFaces + len(clockTemplate) + progressFaces + labelFaces
	// each row: icon + background + label, the label at least "x..."
	minRowFaces = 2 + 4

	customPlayPause = 1
	parentDir       = -1

	clockTemplate = "000:00 / 000:00"
)

const (
	iconFolder = "folder"
	iconTrack  = "track"
)

// playerApp is the core.App and the action.Handler for the UI it builds.
type playerApp struct {
	cfg    config.Config
	theme  config.Palette
	player audio.Player
	events *audio.Queue[audio.Event]
	nav    *media.Navigator

	ui        *ui.State
	presenter *renderer2d.Presenter
	glyphs    *text.Atlas
	icons     map[string]int // icon name -> texture layer
	layers    int
	scale     geometry.ScaleFactor

	clock     *scratch.Buffer
	pending   []audio.Event
	rebuild   bool
	nowPlay   string
	lastPath  string
	timeSpan  arena.Span
	timeRight float32
	timeBase  float32
	barSpan   arena.Span
	barStyle  ui.ProgressStyle
}

func newPlayerApp(cfg config.Config, theme config.Palette, p audio.Player, events *audio.Queue[audio.Event], nav *media.Navigator) *playerApp {
	return &playerApp{
		cfg:    cfg,
		theme:  theme,
		player: p,
		events: events,
		nav:    nav,
		icons:  map[string]int{},
		clock:  scratch.New(32),
	}
}

func (a *playerApp) OnStart(e *core.Engine) error {
	var err error
	if a.ui, err = ui.NewState(a.cfg.Limits, a); err != nil {
		return err
	}
	if err := a.loadTexture(e.Renderer); err != nil {
		return err
	}
	a.presenter = renderer2d.New(e.Renderer)
	a.resize(e.Window.FramebufferSize())
	// an undersized table is a configuration bug: fail at startup
	return a.build()
}

// loadTexture stacks the glyph atlas and the optional icons into one texture.
func (a *playerApp) loadTexture(r core.Renderer) error {
	var err error
	if a.cfg.Font.Path != "" {
		a.glyphs, err = text.LoadTTF(a.cfg.Font.Path, a.cfg.Font.Size, text.Latin1())
	} else {
		a.glyphs, err = text.Default()
	}
	if err != nil {
		return errors.Wrap(err, "load font")
	}

	layers := []image.Image{a.glyphs.Image}
	loaded := assets.LoadIcons(a.cfg.Icons, iconFolder, iconTrack)
	for _, name := range []string{iconFolder, iconTrack} {
		if img, ok := loaded[name]; ok {
			a.icons[name] = len(layers)
			layers = append(layers, img)
		}
	}
	a.layers = len(layers)
	a.glyphs.PlaceInLayer(0, a.layers)

	tex := assets.StackLayers(a.glyphs.Image.Bounds().Size(), layers...)
	return r.UploadTexture(tex.Bounds().Dx(), tex.Bounds().Dy(), assets.Pixels(tex))
}

func (a *playerApp) resize(w, h int) {
	a.scale = geometry.ScaleForScreen(w, h)
	a.rebuild = true
}

func (a *playerApp) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventResize:
		a.resize(v.W, v.H)
	case core.EventKey:
		if !v.Down {
			return
		}
		switch v.Key {
		case core.KeyEscape:
			e.Quit()
		case core.KeySpace:
			a.logCollaborator("toggle playback", a.Custom(customPlayPause))
		case core.KeyBackspace:
			a.logCollaborator("directory up", a.SelectDirectory(parentDir))
		}
	}
}

func (a *playerApp) OnUpdate(e *core.Engine, _ float64) {
	a.drainAudio()

	if _, err := a.ui.Update(e.Input.MouseState()); err != nil {
		logging.Logger().Error("dispatch failed", "err", err)
	}

	if a.rebuild {
		if err := a.build(); err != nil {
			logging.Logger().Error("rebuild failed", "err", err)
		}
	}
	if a.player.State() == audio.Playing {
		if err := a.refreshProgress(); err != nil {
			logging.Logger().Error("progress update failed", "err", err)
		}
	}
}

func (a *playerApp) OnRender(*core.Engine) {
	if err := a.presenter.Present(a.ui); err != nil {
		logging.Logger().Error("present failed", "err", err)
	}
}

func (a *playerApp) OnShutdown(*core.Engine) {
	if a.player.State() != audio.Stopped {
		a.logCollaborator("stop", a.player.Stop())
	}
}

func (a *playerApp) drainAudio() {
	a.pending = a.events.Drain(a.pending[:0])
	for _, ev := range a.pending {
		logging.Logger().Debug("audio event", "kind", ev.Kind.String(), "path", ev.Path)
		switch ev.Kind {
		case audio.EventStarted:
			a.nowPlay = filepath.Base(ev.Path)
		case audio.EventFailed:
			logging.Logger().Warn("playback failed", "path", ev.Path, "err", ev.Err)
			a.nowPlay = ""
		case audio.EventFinished, audio.EventStopped:
			a.nowPlay = ""
		}
		a.rebuild = true
	}
}

// ===== action.Handler =====

func (a *playerApp) PlayTrack(id int) error {
	it, err := a.item(id)
	if err != nil {
		return err
	}
	a.lastPath = it.Path
	return a.player.Play(it.Path)
}

func (a *playerApp) PausePlayback() error  { return a.player.Pause() }
func (a *playerApp) ResumePlayback() error { return a.player.Resume() }

func (a *playerApp) SelectDirectory(id int) error {
	a.rebuild = true
	if id == parentDir {
		return a.nav.Up()
	}
	return a.nav.Enter(id)
}

func (a *playerApp) Custom(id int) error {
	if id != customPlayPause {
		return errors.Errorf("unknown custom action %d", id)
	}
	var err error
	switch a.player.State() {
	case audio.Playing:
		err = a.player.Pause()
	case audio.Paused:
		err = a.player.Resume()
	default:
		if a.lastPath == "" {
			err = audio.ErrNoSource
		} else {
			err = a.player.Play(a.lastPath)
		}
	}
	if err != nil {
		// the icon already swapped; put it back
		a.rebuild = true
	}
	return err
}

func (a *playerApp) item(id int) (media.Item, error) {
	list := a.nav.List()
	if id < 0 || id >= len(list) {
		return media.Item{}, errors.Errorf("no library entry %d", id)
	}
	return list[id], nil
}

func (a *playerApp) logCollaborator(what string, err error) {
	if err != nil {
		logging.Logger().Warn(what+" failed", "err", err)
	}
}
