package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/kdchambers/music-player-sub001/engine/audio"
	"github.com/kdchambers/music-player-sub001/engine/config"
	"github.com/kdchambers/music-player-sub001/engine/core"
	glbackend "github.com/kdchambers/music-player-sub001/engine/gfx/gl"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/kdchambers/music-player-sub001/engine/media"
	"github.com/kdchambers/music-player-sub001/engine/platform"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// GLFW and GL must stay on the main thread.
func init() { runtime.LockOSThread() }

type flags struct {
	Config  string
	Library string
	Debug   bool
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "musicplayer [flags] [library-dir]",
		Short: "Browse a music library and play tracks",
		Example: `  # Browse the current directory
  musicplayer

  # Browse a library with a custom config and debug logging
  musicplayer --config ~/.config/musicplayer.toml -d ~/Music`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.Library = args[0]
			}
			return run(cmd.Context(), f)
		},
	}

	rootCmd.Flags().StringVarP(&f.Config, "config", "c", "musicplayer.toml", "Path to the TOML config file")
	rootCmd.Flags().StringVar(&f.Library, "library", "", "Library root (overrides the config)")
	rootCmd.Flags().BoolVarP(&f.Debug, "debug", "d", false, "Enable debug logging")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)
	logging.SetLogger(logger)

	cfg, err := config.Load(f.Config)
	if err != nil {
		return err
	}
	if f.Library != "" {
		cfg.Library = f.Library
	}
	theme, err := cfg.Theme.Parse()
	if err != nil {
		return err
	}

	nav, err := media.NewNavigator(cfg.Library)
	if err != nil {
		return err
	}
	logger.Info("library opened", "root", nav.Root(), "entries", len(nav.List()))

	worker := audio.NewWorker(audio.Options{})
	app := newPlayerApp(cfg, theme, worker, worker.Events(), nav)

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return worker.Run(gctx) })

	runErr := core.Run(app, core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		FrameRate:  cfg.Window.FrameRate,
		ClearColor: theme.Background,
	}, platform.NewGLFWWindow, func(win core.Window, _ core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg.Limits.Faces)
	})

	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, "audio worker")
	}
	return runErr
}
