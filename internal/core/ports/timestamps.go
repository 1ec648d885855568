package ports

import "time"

// Timestamps mutates and inspects file modification times. File contents are
// never read or written through this interface.
//
//go:generate mockgen -source=timestamps.go -destination=mocks/mock_timestamps.go -package=mocks
type Timestamps interface {
	// ModTime returns the modification time of the given path. The error
	// chain contains fs.ErrNotExist when the path is absent.
	ModTime(path string) (time.Time, error)

	// Touch sets the path's mtime to the current time, strictly greater
	// than its previous mtime, and returns the value written.
	Touch(path string) (time.Time, error)

	// Align sets the mtime of every file matching the glob pattern to ts
	// and returns the matched paths. Zero matches is not an error.
	Align(pattern string, ts time.Time) ([]string, error)

	// Glob returns the paths matching the pattern without mutating anything.
	Glob(pattern string) ([]string, error)
}
