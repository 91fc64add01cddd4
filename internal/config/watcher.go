package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"picture-viewer/internal/logger"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk and hands the
// result to a callback. The callback runs on the watcher goroutine; callers
// that touch UI state must hop to the UI thread themselves.
type Watcher struct {
	path     string
	onReload func(*Settings)
	logger   logger.Logger
	watcher  *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// NewWatcher watches the directory containing path so editors that replace the
// file on save are still picked up.
func NewWatcher(path string, onReload func(*Settings), log logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if log == nil {
		log = logger.NewNop()
	}

	w := &Watcher{
		path:     abs,
		onReload: onReload,
		logger:   log,
		watcher:  fsWatcher,
		done:     make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

func (w *Watcher) processEvents() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config", err, map[string]interface{}{"path": w.path})
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	settings, err := Load(w.path)
	if err != nil {
		w.logger.Warning("config", "reload skipped", map[string]interface{}{
			"path":  w.path,
			"error": err.Error(),
		})
		return
	}

	w.logger.Info("config", "settings reloaded", map[string]interface{}{"path": w.path})
	if w.onReload != nil {
		w.onReload(settings)
	}
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}
