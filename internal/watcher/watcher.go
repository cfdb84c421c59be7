// Package watcher re-runs a report when task files or the board config change.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of file events (an editor save, a batch
// of adds) into a single refresh.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches board directories and invokes a callback, debounced,
// whenever a relevant file changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	delay    time.Duration
	ignore   func(name string) bool
	callback func()

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	running sync.WaitGroup
}

// Options configures a Watcher.
type Options struct {
	// Delay is the debounce delay; 0 uses DefaultDebounce.
	Delay time.Duration
	// Ignore reports file names whose events are dropped. Nil keeps all.
	Ignore func(name string) bool
	// Logger receives watch errors. Nil discards them.
	Logger *slog.Logger
}

// New creates a Watcher that monitors the given directories.
func New(dirs []string, callback func(), opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	for _, d := range dirs {
		if err := fsw.Add(d); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", d, err)
		}
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   opts.Logger,
		delay:    opts.Delay,
		ignore:   opts.Ignore,
		callback: callback,
	}
	if w.delay <= 0 {
		w.delay = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w, nil
}

// Run starts the watch loop. It blocks until the context is canceled or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			w.debounce()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher and cancels any pending
// refresh. It waits for a callback that is already running to return.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.running.Wait()
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return w.ignore == nil || !w.ignore(filepath.Base(event.Name))
}

func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.running.Add(1)
	w.mu.Unlock()

	defer w.running.Done()
	w.callback()
}
