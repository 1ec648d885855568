// Package fs provides the file system adapter for timestamp bookkeeping.
// It only ever reads and writes modification times, never file contents.
package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/heph2/foxtail/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Timestamps = (*Timestamps)(nil)

// Timestamps implements ports.Timestamps on the local file system.
type Timestamps struct {
	// now is swappable for tests.
	now func() time.Time
}

// NewTimestamps creates a new Timestamps adapter.
func NewTimestamps() *Timestamps {
	return &Timestamps{now: time.Now}
}

// ModTime returns the modification time of the given path.
func (t *Timestamps) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return info.ModTime(), nil
}

// Touch sets the path's mtime and atime to the current time. The written
// value is guaranteed to be strictly greater than the previous mtime: when
// the wall clock has not advanced past it (coarse filesystem timestamps,
// repeated runs within one tick) the previous mtime is bumped instead.
func (t *Timestamps) Touch(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	ts := t.now()
	if !ts.After(info.ModTime()) {
		ts = info.ModTime().Add(10 * time.Millisecond)
	}

	if err := os.Chtimes(path, ts, ts); err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to update file times"), "path", path)
	}

	return ts, nil
}

// Glob returns the paths matching the pattern.
func (t *Timestamps) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid glob pattern"), "pattern", pattern)
	}
	return matches, nil
}

// Align sets the mtime and atime of every file matching the glob pattern to
// ts and returns the matched paths. Zero matches returns an empty slice and
// no error; the caller decides how loudly to report that.
func (t *Timestamps) Align(pattern string, ts time.Time) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid glob pattern"), "pattern", pattern)
	}

	for _, match := range matches {
		if err := os.Chtimes(match, ts, ts); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to update file times"), "path", match)
		}
	}

	return matches, nil
}
