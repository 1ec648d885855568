// Package app implements the application layer for foxtail.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/heph2/foxtail/internal/adapters/watcher"
	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reloader     ports.Reloader
	timestamps   ports.Timestamps
	watcher      ports.Watcher
	logger       ports.Logger

	// reloadGroup deduplicates overlapping reload triggers in watch mode.
	reloadGroup singleflight.Group

	// lastTouch remembers the marker mtime foxtail itself wrote so watch
	// mode can tell its own touch apart from a real edit.
	mu        sync.Mutex
	lastTouch time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reloader ports.Reloader,
	timestamps ports.Timestamps,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reloader:     reloader,
		timestamps:   timestamps,
		watcher:      w,
		logger:       log,
	}
}

// Options carry the command-line overrides shared by all commands.
type Options struct {
	ConfigPath string
	Root       string
}

func (o Options) loadOptions() ports.LoadOptions {
	return ports.LoadOptions{ConfigPath: o.ConfigPath, Root: o.Root}
}

// Reload forces a rebuild of the cached environment and re-aligns the cache
// bookkeeping. The sequence is strictly linear; the first failing step
// aborts the run and nothing after it executes.
func (a *App) Reload(ctx context.Context, opts Options) error {
	settings, err := a.configLoader.Load(".", opts.loadOptions())
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	return a.reloadProject(ctx, settings)
}

func (a *App) reloadProject(ctx context.Context, settings *domain.Settings) error {
	project := settings.Project

	// Step 1: the project root must exist. Nothing runs without it.
	if _, err := a.timestamps.ModTime(project.Root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(
				zerr.With(domain.ErrProjectRootMissing, "root", project.Root),
				"hint", "the directory may have moved; fix project.root or run `direnv reload` there by hand",
			)
		}
		return errors.Join(domain.ErrPathStatFailed, err)
	}

	// Step 2: forced rebuild via the external reload mechanism. Its exit
	// status propagates; on failure the marker and caches stay untouched.
	if err := a.reloader.Reload(ctx, project.Root, settings.Reload); err != nil {
		return err
	}

	// Step 3: touch the marker. direnv would treat the newer marker as a
	// pending change on its next check; step 4 neutralizes that.
	if _, err := a.timestamps.Touch(project.MarkerPath()); err != nil {
		return errors.Join(domain.ErrMarkerTouchFailed, err)
	}

	// Step 4: copy the marker's stored mtime onto every cached profile so
	// the freshness comparison reads "up to date" and no reload loop
	// starts. Read back rather than reusing markerTime: the filesystem may
	// round what it stored.
	storedTime, err := a.timestamps.ModTime(project.MarkerPath())
	if err != nil {
		return errors.Join(domain.ErrMarkerTouchFailed, err)
	}

	matched, err := a.timestamps.Align(project.CachePattern(), storedTime)
	if err != nil {
		return errors.Join(domain.ErrCacheAlignFailed, err)
	}

	if len(matched) == 0 {
		a.logger.Warn(fmt.Sprintf("no cache files matched %s; nothing to align", project.CachePattern()))
	} else {
		a.logger.Info(fmt.Sprintf("aligned %d cache file(s) to marker time", len(matched)))
	}

	a.mu.Lock()
	a.lastTouch = storedTime
	a.mu.Unlock()

	return nil
}

// Status inspects the environment without mutating anything.
func (a *App) Status(_ context.Context, opts Options) (*domain.StatusReport, error) {
	settings, err := a.configLoader.Load(".", opts.loadOptions())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	project := settings.Project
	report := &domain.StatusReport{
		Root:        project.Root,
		MarkerPath:  project.MarkerPath(),
		Fingerprint: settings.Fingerprint(),
	}

	if _, err := a.timestamps.ModTime(project.Root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, nil
		}
		return nil, errors.Join(domain.ErrPathStatFailed, err)
	}
	report.RootExists = true

	markerTime, err := a.timestamps.ModTime(project.MarkerPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, nil
		}
		return nil, errors.Join(domain.ErrPathStatFailed, err)
	}
	report.MarkerExists = true
	report.MarkerTime = markerTime

	matches, err := a.timestamps.Glob(project.CachePattern())
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		modTime, err := a.timestamps.ModTime(match)
		if err != nil {
			return nil, errors.Join(domain.ErrPathStatFailed, err)
		}
		report.CacheFiles = append(report.CacheFiles, domain.CacheFileStatus{
			Path:    match,
			ModTime: modTime,
			Fresh:   !modTime.Before(markerTime),
		})
	}

	return report, nil
}

// Watch keeps the environment fresh continuously: marker changes trigger the
// same four-step reload, debounced and deduplicated.
func (a *App) Watch(ctx context.Context, opts Options) error {
	settings, err := a.configLoader.Load(".", opts.loadOptions())
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	project := settings.Project
	if _, err := a.timestamps.ModTime(project.Root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrProjectRootMissing, "root", project.Root)
		}
		return errors.Join(domain.ErrPathStatFailed, err)
	}

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s (marker %s)", project.Root, project.Marker))

	deb := watcher.NewDebouncer(settings.Debounce, func(_ []string) {
		a.triggerReload(ctx, settings)
	})

	for ev := range a.watcher.Events() {
		if ev.Path != project.MarkerPath() {
			continue
		}
		if ev.Operation == ports.OpRemove || ev.Operation == ports.OpRename {
			a.logger.Warn("marker file disappeared; waiting for it to return")
			continue
		}
		deb.Add(ev.Path)
	}

	deb.Flush()

	return ctx.Err()
}

// triggerReload runs one deduplicated reload, skipping triggers caused by
// foxtail's own marker touch.
func (a *App) triggerReload(ctx context.Context, settings *domain.Settings) {
	key := settings.Fingerprint()
	_, _, _ = a.reloadGroup.Do(key, func() (any, error) {
		current, err := a.timestamps.ModTime(settings.Project.MarkerPath())
		if err == nil {
			a.mu.Lock()
			self := !a.lastTouch.IsZero() && current.Equal(a.lastTouch)
			a.mu.Unlock()
			if self {
				// Our own touch echoed back through the watcher.
				return nil, nil
			}
		}

		if err := a.reloadProject(ctx, settings); err != nil {
			a.logger.Error(err)
			return nil, err
		}
		return nil, nil
	})
}
