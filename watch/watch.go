// Package watch reloads a mesh file whenever it changes on disk.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/smasonuk/meshlab"
)

// Watcher loads the file again after every write and keeps the newest good
// mesh until Take is called. Files that fail to parse are logged and skipped,
// which covers editors that write in several steps.
type Watcher struct {
	path   string
	format meshlab.Format

	watcher *fsnotify.Watcher
	latest  atomic.Pointer[meshlab.Mesh]
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New starts watching path. The parent directory is watched so that editors
// which replace the file by renaming are still seen.
func New(path string, format meshlab.Format) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", abs, err)
	}
	w := &Watcher{
		path:    abs,
		format:  format,
		watcher: fw,
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("mesh watcher", "path", w.path, "err", err)
		}
	}
}

func (w *Watcher) reload() {
	m, err := meshlab.LoadFile(w.path, w.format)
	if err != nil {
		slog.Warn("mesh reload skipped", "path", w.path, "err", err)
		return
	}
	w.latest.Store(m)
	slog.Info("mesh reloaded", "path", w.path, "vertices", m.VertexCount(), "faces", m.FaceCount())
}

// Take returns the most recently reloaded mesh, or nil if nothing changed
// since the last call.
func (w *Watcher) Take() *meshlab.Mesh {
	return w.latest.Swap(nil)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
