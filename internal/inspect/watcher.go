package inspect

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is the delay before a burst of filesystem events
// triggers a single rebuild.
const watchDebounce = 100 * time.Millisecond

// Watcher monitors a routes directory and invokes onChange after each
// settled burst of filesystem events. New subdirectories are added to the
// watch set as they appear.
type Watcher struct {
	root     string
	onChange func(path string)
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher over root and all of its subdirectories.
func NewWatcher(root string, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{root: root, onChange: onChange, fsw: fsw}
	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run processes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if skipWatchPath(ev.Name) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				// A new directory must join the watch set immediately,
				// before files land inside it.
				_ = w.addRecursive(ev.Name)
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			w.onChange(pending)
			timer = nil
			timerC = nil

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if skipWatchPath(path) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func skipWatchPath(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
