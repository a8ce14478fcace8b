package main

import (
	"path/filepath"
	"strings"

	"github.com/kdchambers/music-player-sub001/engine/action"
	"github.com/kdchambers/music-player-sub001/engine/arena"
	"github.com/kdchambers/music-player-sub001/engine/audio"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/kdchambers/music-player-sub001/engine/media"
	"github.com/kdchambers/music-player-sub001/engine/text"
	"github.com/kdchambers/music-player-sub001/engine/ui"
	"github.com/pkg/errors"
)

const (
	padding     = 0.02
	controlSize = 0.12
	barHeight   = 0.02
)

// build regenerates every face and registration from the navigator and the
// player state. On failure the UI is left empty, never half built, and the
// in-place progress writes are disabled until a build succeeds.
func (a *playerApp) build() error {
	a.rebuild = false
	a.ui.ClearAll()
	a.timeSpan, a.barSpan = arena.Span{}, arena.Span{}
	if err := a.layout(); err != nil {
		a.ui.ClearAll()
		a.timeSpan, a.barSpan = arena.Span{}, arena.Span{}
		return err
	}
	logging.Logger().Debug("ui rebuilt",
		"faces", a.ui.UsedFaceCount(),
		"events", a.ui.Events.Len(),
		"actions", a.ui.Actions.Len())
	return nil
}

func (a *playerApp) layout() error {
	// the toggle goes first so its faces stay inside the swap payload range
	if err := a.buildToggle(); err != nil {
		return errors.Wrap(err, "build toggle")
	}
	if err := a.buildHeader(); err != nil {
		return errors.Wrap(err, "build header")
	}
	if err := a.buildList(); err != nil {
		return errors.Wrap(err, "build list")
	}
	if err := a.buildFooter(); err != nil {
		return errors.Wrap(err, "build footer")
	}
	return nil
}

func (a *playerApp) controls() geometry.Extent {
	return geometry.Extent{X: footerArea.X, Y: footerArea.Top() + padding + controlSize, Width: footerArea.Width, Height: controlSize}
}

func (a *playerApp) buildToggle() error {
	c := a.controls()
	icon := geometry.Extent{X: c.X, Y: c.Y, Width: controlSize * a.aspect(), Height: controlSize}

	play := ui.PlayIcon(icon, a.theme.Accent)
	pause := ui.PauseIcon(icon, a.theme.Accent)
	shown, hidden := play, pause
	if a.player.State() == audio.Playing {
		shown, hidden = pause, play
	}
	_, _, err := a.ui.Toggle(icon, shown, hidden, toggleFaces, customPlayPause)
	return err
}

func (a *playerApp) buildHeader() error {
	h := headerArea
	title := h
	if !a.nav.AtRoot() {
		up := geometry.Extent{X: h.X, Y: h.Y, Width: 0.2, Height: h.Height}
		if _, err := a.button(up, upLabel, len(upLabel), action.DirectorySelect{DirID: parentDir}); err != nil {
			return err
		}
		title.X += up.Width + padding
		title.Width -= up.Width + padding
	}
	rel, err := filepath.Rel(a.nav.Root(), a.nav.Dir())
	if err != nil || rel == "." {
		rel = ""
	}
	_, err = a.label(title, filepath.Base(a.nav.Root())+"/"+filepath.ToSlash(rel), a.theme.Text, ui.AlignStart)
	return err
}

func (a *playerApp) listStyle() ui.StackStyle {
	return ui.StackStyle{Axis: ui.Vertical, Cell: rowHeight, Gap: rowGap, Align: ui.AlignStretch}
}

// rowCapacity is how many list rows fit on screen and in the tables.
func (a *playerApp) rowCapacity() int {
	l := a.cfg.Limits
	return max(0, min(
		ui.Capacity(listArea, a.listStyle()),
		(l.Events-reservedEvents)/eventsPerRow,
		(l.Actions-reservedEvents)/eventsPerRow,
		(l.Extents-reservedExtents)/extentsPerRow,
		l.VertexRanges-reservedExtents,
		(l.Faces-reservedFaces)/minRowFaces,
	))
}

// rowLabelFaces is the glyph budget of each label when rows are shown.
func (a *playerApp) rowLabelFaces(rows int) int {
	if rows == 0 {
		return 0
	}
	return (a.cfg.Limits.Faces-reservedFaces)/rows - 2
}

func (a *playerApp) buildList() error {
	items := a.nav.List()
	rows := min(len(items), a.rowCapacity())
	if rows < len(items) {
		logging.Logger().Debug("list truncated", "shown", rows, "entries", len(items))
	}
	budget := a.rowLabelFaces(rows)
	for i, cell := range ui.Stack(listArea, a.listStyle(), rows) {
		it := items[i]
		if layer, ok := a.iconFor(it.Kind); ok {
			icon := geometry.Extent{X: cell.X, Y: cell.Y, Width: cell.Height * a.aspect(), Height: cell.Height}
			if _, err := ui.Image(a.ui.Writer, ui.ImageStyle{Extent: icon, Layer: layer, Layers: a.layers, Tint: colors.White}); err != nil {
				return err
			}
			cell.X += icon.Width + padding
			cell.Width -= icon.Width + padding
		}

		label := it.Name
		var act action.Action = action.AudioPlay{TrackID: i}
		if it.Kind == media.KindDirectory {
			act = action.DirectorySelect{DirID: i}
			if _, ok := a.iconFor(it.Kind); !ok {
				label += "/"
			}
		}
		if _, err := a.button(cell, label, budget, act); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	return nil
}

func (a *playerApp) buildFooter() error {
	c := a.controls()
	toggleWidth := controlSize * a.aspect()
	opts := text.Options{Scale: a.scale, Color: a.theme.Text}

	clockDims, err := text.Measure(a.glyphs, clockTemplate, opts)
	if err != nil {
		return err
	}
	reserve, err := text.FaceCount(a.glyphs, clockTemplate, 0)
	if err != nil {
		return err
	}
	a.timeRight = c.Right()
	a.timeBase = c.Top() + (c.Height-clockDims.Height)/2 + clockDims.Ascent
	a.timeSpan, err = ui.FixedText(a.ui.Writer, a.glyphs, "", opts, reserve)
	if err != nil {
		return err
	}

	barX := c.X + toggleWidth + 2*padding
	a.barStyle = ui.ProgressStyle{
		Extent: geometry.Extent{
			X:      barX,
			Y:      c.Y - (c.Height-barHeight)/2,
			Width:  max(padding, a.timeRight-clockDims.Width-padding-barX),
			Height: barHeight,
		},
		Background: a.theme.Track,
		Fill:       a.theme.Accent,
	}
	if a.barSpan, err = ui.ProgressBar(a.ui.Writer, a.barStyle); err != nil {
		return err
	}
	if err := a.refreshProgress(); err != nil {
		return err
	}

	status := geometry.Extent{X: footerArea.X, Y: footerArea.Y, Width: footerArea.Width, Height: footerArea.Height - controlSize - 2*padding}
	msg := "Nothing playing"
	if a.nowPlay != "" {
		msg = a.nowPlay
		if a.player.State() == audio.Paused {
			msg += " (paused)"
		}
	}
	_, err = a.label(status, msg, a.theme.Text, ui.AlignStart)
	return err
}

// refreshProgress rewrites the progress fill and the clock in place. It does
// nothing while no footer is built.
func (a *playerApp) refreshProgress() error {
	if a.barSpan.Count == 0 || a.timeSpan.Count == 0 {
		return nil
	}
	played, length := a.player.SecondsPlayed(), a.player.TrackLengthSeconds()
	if length > 0 {
		a.barStyle.Progress = float32(played / length)
	} else {
		a.barStyle.Progress = 0
	}
	if err := ui.SetProgress(a.ui.Writer, a.barSpan, a.barStyle); err != nil {
		return err
	}

	clock := a.clock.Reset().Clock(played).S(" / ").Clock(length).View()
	opts := text.Options{Scale: a.scale, Color: a.theme.Text}
	d, err := text.Measure(a.glyphs, clock, opts)
	if err != nil {
		return err
	}
	opts.Origin = geometry.Point{X: a.timeRight - d.Width, Y: a.timeBase}
	if err := ui.RewriteFixedText(a.ui.Writer, a.timeSpan, a.glyphs, clock, opts); err != nil {
		return err
	}
	a.ui.MarkDirty()
	return nil
}

// button is a hoverable, clickable button running act, its label cut to at
// most faces glyphs.
func (a *playerApp) button(e geometry.Extent, label string, faces int, act action.Action) (arena.Span, error) {
	sp, err := ui.Button(a.ui.Writer, a.glyphs, ui.ButtonStyle{
		Extent:     e,
		Background: a.theme.Button,
		TextColor:  a.theme.Text,
		Label:      a.fit(label, e.Width-2*padding, faces),
		Padding:    padding,
		Scale:      a.scale,
	})
	if err != nil {
		return arena.Span{}, err
	}
	bg := arena.Span{Start: sp.Start, Count: 1}
	if _, err := a.ui.HoverColor(bg, e, a.theme.Button, a.theme.Hover); err != nil {
		return arena.Span{}, err
	}
	if _, err := a.ui.OnClick(e, act); err != nil {
		return arena.Span{}, err
	}
	return sp, nil
}

// label writes single-line text vertically centred in e.
func (a *playerApp) label(e geometry.Extent, s string, c colors.Color, align ui.Align) (arena.Span, error) {
	s = a.fit(s, e.Width, labelFaces)
	opts := text.Options{Scale: a.scale, Color: c}
	d, err := text.Measure(a.glyphs, s, opts)
	if err != nil {
		return arena.Span{}, err
	}
	x := e.X
	if align == ui.AlignEnd {
		x = e.Right() - d.Width
	}
	opts.Origin = geometry.Point{X: x, Y: e.Top() + (e.Height-d.Height)/2 + d.Ascent}
	return ui.Text(a.ui.Writer, a.glyphs, s, opts)
}

// fit shortens s with a trailing "..." until it is at most width wide and
// takes at most faces glyph faces.
func (a *playerApp) fit(s string, width float32, faces int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if a.fits(s, width, faces) {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if t := string(r) + "..."; a.fits(t, width, faces) {
			return t
		}
	}
	return ""
}

// fits reports whether s stays inside width and faces. Lookup errors count
// as fitting so the generator reports them.
func (a *playerApp) fits(s string, width float32, faces int) bool {
	n, err := text.FaceCount(a.glyphs, s, 0)
	if err != nil {
		return true
	}
	if n > faces {
		return false
	}
	d, err := text.Measure(a.glyphs, s, text.Options{Scale: a.scale})
	return err != nil || d.Width <= width
}

func (a *playerApp) aspect() float32 {
	if a.scale.Y == 0 {
		return 1
	}
	return a.scale.X / a.scale.Y
}

func (a *playerApp) iconFor(k media.Kind) (int, bool) {
	name := iconTrack
	if k == media.KindDirectory {
		name = iconFolder
	}
	layer, ok := a.icons[name]
	return layer, ok
}
