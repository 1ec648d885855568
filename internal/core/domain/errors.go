package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrProjectRootMissing is returned when the configured project root does not exist.
	ErrProjectRootMissing = zerr.New("project root does not exist")

	// ErrMarkerMissing is returned when the environment marker file does not exist.
	ErrMarkerMissing = zerr.New("environment marker file does not exist")

	// ErrReloadFailed is returned when the external reload command exits non-zero.
	ErrReloadFailed = zerr.New("environment reload failed")

	// ErrReloadStartFailed is returned when the reload command cannot be started at all.
	ErrReloadStartFailed = zerr.New("failed to start reload command")

	// ErrMarkerTouchFailed is returned when the marker mtime cannot be updated.
	ErrMarkerTouchFailed = zerr.New("failed to touch marker file")

	// ErrCacheAlignFailed is returned when cache file timestamps cannot be aligned.
	ErrCacheAlignFailed = zerr.New("failed to align cache timestamps")

	// ErrConfigNotFound is returned when no foxtail.yaml is found and no root override is given.
	ErrConfigNotFound = zerr.New("could not find foxtail.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the configuration is missing a project root.
	ErrConfigInvalid = zerr.New("configuration does not name a project root")

	// ErrEnvironmentStale is returned by status when the cached profiles lag the marker.
	ErrEnvironmentStale = zerr.New("environment is stale")

	// ErrWatcherFailed is returned when the file system watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch project root")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")
)

// ExitError carries a specific process exit code up to main. It wraps the
// underlying cause so errors.Is checks against the sentinels above keep
// working.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error chain, returning fallback
// when no ExitError is present.
func ExitCode(err error, fallback int) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return fallback
}
