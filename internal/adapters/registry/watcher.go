package registry

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/leap/internal/engine/flow"
)

// ReloadDebounce is the quiet window applied to file change events before
// the cached registry decode is invalidated. Editors and sync tools tend
// to emit bursts of writes for a single save.
const ReloadDebounce = 100 * time.Millisecond

// watcher invalidates the registry cache when the file changes on disk.
// It watches the containing directory because atomic saves replace the
// file rather than writing it in place.
type watcher struct {
	fs     *fsnotify.Watcher
	reload *flow.Debounced[string, bool]
}

func newWatcher(r *Registry) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(r.path)); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &watcher{
		fs: fs,
		reload: flow.Debounce(func(string) bool {
			r.invalidate()
			return true
		}, ReloadDebounce),
	}
	go w.processEvents(r.path)
	return w, nil
}

func (w *watcher) processEvents(path string) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.reload.Call(event.Name)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *watcher) close() error {
	w.reload.Cancel()
	return w.fs.Close()
}
