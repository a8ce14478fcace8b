package core

import (
	"runtime"
	"time"

	"github.com/kdchambers/music-player-sub001/engine/logging"
)

// Run wires the platform window + renderer and executes the main loop.
// Updates run at a fixed Config.FrameRate; the loop sleeps off whatever is
// left of each frame instead of spinning.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(w, h), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	if err := app.OnStart(eng); err != nil {
		return err
	}

	rate := cfg.FrameRate
	if rate <= 0 {
		rate = 60
	}
	tick := time.Second / time.Duration(rate)
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 5 // prevent spiral of death
	)

	for !win.ShouldClose() && !eng.quit {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, tick.Seconds())
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}

		if steps > 0 {
			rend.Clear(cfg.ClearColor)
			app.OnRender(eng)
			win.SwapBuffers()
		}

		if rest := tick - accum - time.Since(now); rest > 0 {
			time.Sleep(rest)
		}
	}

	app.OnShutdown(eng)
	logging.Logger().Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}
