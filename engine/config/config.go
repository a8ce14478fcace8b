// Package config loads musicplayer.toml.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	VSync     bool   `toml:"vsync"`
	FrameRate int    `toml:"frame_rate"`
}

// Theme colors are "#rrggbb" or "#rrggbbaa".
type Theme struct {
	Background string `toml:"background"`
	Button     string `toml:"button"`
	Hover      string `toml:"hover"`
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
	Track      string `toml:"track"`
}

// Palette is Theme parsed.
type Palette struct {
	Background, Button, Hover, Text, Accent, Track colors.Color
}

func (t Theme) Parse() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *colors.Color
	}{
		{"background", t.Background, &p.Background},
		{"button", t.Button, &p.Button},
		{"hover", t.Hover, &p.Hover},
		{"text", t.Text, &p.Text},
		{"accent", t.Accent, &p.Accent},
		{"track", t.Track, &p.Track},
	} {
		c, err := colors.ParseHex(f.hex)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "theme.%s", f.name)
		}
		*f.dst = c
	}
	return p, nil
}

// Font selects the glyph atlas. An empty Path uses the built-in bitmap font.
type Font struct {
	Path string  `toml:"path"`
	Size float32 `toml:"size"`
}

type Config struct {
	Window  Window        `toml:"window"`
	Limits  limits.Limits `toml:"limits"`
	Theme   Theme         `toml:"theme"`
	Font    Font          `toml:"font"`
	Library string        `toml:"library"`
	// Icons is a directory of PNGs stacked into the shared texture.
	Icons string `toml:"icons"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:     "music player",
			Width:     800,
			Height:    600,
			VSync:     true,
			FrameRate: 30,
		},
		Limits: limits.Default(),
		Theme: Theme{
			Background: "#14191f",
			Button:     "#2b3440",
			Hover:      "#3d4a5a",
			Text:       "#e6e6e6",
			Accent:     "#4fa3e0",
			Track:      "#1e252d",
		},
		Font:    Font{Size: 16},
		Library: ".",
	}
}

// Load decodes path over Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Wrapf(limits.ErrInvalidArgument, "window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate <= 0 {
		return errors.Wrapf(limits.ErrInvalidArgument, "frame rate %d", c.Window.FrameRate)
	}
	if c.Font.Path != "" && c.Font.Size <= 0 {
		return errors.Wrapf(limits.ErrInvalidArgument, "font size %v", c.Font.Size)
	}
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	_, err := c.Theme.Parse()
	return err
}
