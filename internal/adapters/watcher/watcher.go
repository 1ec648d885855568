package watcher

import (
	"context"
	"errors"
	"iter"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher implements ports.Watcher using fsnotify. It watches a single
// directory, which is all foxtail needs: the marker file lives directly in
// the project root.
type Watcher struct {
	logger ports.Logger

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	events chan ports.WatchEvent
}

// NewWatcher creates a new Watcher. The underlying fsnotify watcher is not
// allocated until Start so construction never touches the OS.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Start begins watching the given directory. Events are forwarded until the
// context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw != nil {
		return zerr.Wrap(domain.ErrWatcherFailed, "watcher already started")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(domain.ErrWatcherFailed, err)
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return zerr.With(errors.Join(domain.ErrWatcherFailed, err), "dir", dir)
	}

	w.fsw = fsw
	w.events = make(chan ports.WatchEvent)

	go w.forward(ctx, fsw, w.events)

	return nil
}

// forward pumps fsnotify events into the adapter's channel until the
// context is cancelled or the fsnotify channels close.
func (w *Watcher) forward(ctx context.Context, fsw *fsnotify.Watcher, out chan<- ports.WatchEvent) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			mapped, known := mapOp(ev.Op)
			if !known {
				continue
			}
			select {
			case out <- ports.WatchEvent{Path: ev.Name, Operation: mapped}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw == nil {
		return nil
	}

	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// Events returns an iterator over file system events. The iterator ends
// when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	w.mu.Lock()
	events := w.events
	w.mu.Unlock()

	return func(yield func(ports.WatchEvent) bool) {
		if events == nil {
			return
		}
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

func mapOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	case op.Has(fsnotify.Chmod):
		return ports.OpChmod, true
	default:
		return 0, false
	}
}
