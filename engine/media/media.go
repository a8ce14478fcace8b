// Package media lists a music library on disk.
package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/kdchambers/music-player-sub001/engine/logging"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindDirectory
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

var audioExt = map[string]bool{".mp3": true, ".flac": true, ".wav": true}

// KindOf classifies a file name by extension.
func KindOf(name string) Kind {
	if audioExt[strings.ToLower(filepath.Ext(name))] {
		return KindAudio
	}
	return KindUnknown
}

// Item is one entry of a listed directory.
type Item struct {
	Name string // NFC normalised, for display
	Path string
	Kind Kind
}

// Navigator walks a library without leaving its root.
type Navigator struct {
	root  string
	cwd   string
	items []Item
}

// NewNavigator opens root and lists it.
func NewNavigator(root string) (*Navigator, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, "resolve library root")
	}
	n := &Navigator{root: abs, cwd: abs}
	if err := n.refresh(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Navigator) Root() string { return n.root }
func (n *Navigator) Dir() string  { return n.cwd }

// AtRoot reports whether Up has anywhere to go.
func (n *Navigator) AtRoot() bool { return n.cwd == n.root }

// List returns the current directory: directories first, then files, each
// sorted by name. The slice is owned by the navigator.
func (n *Navigator) List() []Item { return n.items }

// Enter descends into the directory at index.
func (n *Navigator) Enter(index int) error {
	if index < 0 || index >= len(n.items) {
		return errors.Wrapf(limits.ErrInvalidArgument, "entry %d of %d", index, len(n.items))
	}
	it := n.items[index]
	if it.Kind != KindDirectory {
		return errors.Wrapf(limits.ErrInvalidArgument, "%s is not a directory", it.Name)
	}
	return n.chdir(it.Path)
}

// Up moves to the parent directory. It is a no-op at the root.
func (n *Navigator) Up() error {
	if n.AtRoot() {
		return nil
	}
	return n.chdir(filepath.Dir(n.cwd))
}

func (n *Navigator) chdir(dir string) error {
	prev := n.cwd
	n.cwd = dir
	if err := n.refresh(); err != nil {
		n.cwd = prev
		return err
	}
	return nil
}

func (n *Navigator) refresh() error {
	entries, err := os.ReadDir(n.cwd)
	if err != nil {
		return errors.Wrapf(err, "list %s", n.cwd)
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		it := Item{
			Name: norm.NFC.String(e.Name()),
			Path: filepath.Join(n.cwd, e.Name()),
			Kind: KindOf(e.Name()),
		}
		if e.IsDir() {
			it.Kind = KindDirectory
		}
		if it.Kind == KindUnknown {
			logging.Logger().Debug("skipping unrecognised file", "name", it.Name)
			continue
		}
		items = append(items, it)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if (items[i].Kind == KindDirectory) != (items[j].Kind == KindDirectory) {
			return items[i].Kind == KindDirectory
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	n.items = items
	return nil
}
