// Package domain contains the core domain model for foxtail.
package domain

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Defaults for a nix-direnv project layout.
const (
	DefaultMarker    = ".envrc"
	DefaultCacheDir  = ".direnv"
	DefaultCacheGlob = "*.rc"
	DefaultDebounce  = 500 * time.Millisecond
)

// Permissions for files and directories foxtail creates.
const (
	FilePerm fs.FileMode = 0o644
	DirPerm  fs.FileMode = 0o750
)

// RootPlaceholder is substituted with the project root in reload command
// arguments.
const RootPlaceholder = "{root}"

// Project describes one direnv-managed project directory.
type Project struct {
	// Root is the absolute path of the project directory.
	Root string

	// Marker is the file direnv watches for changes, relative to Root.
	Marker string

	// CacheDir holds the cached environment profiles, relative to Root.
	CacheDir string

	// CacheGlob matches the cached profile files inside CacheDir.
	CacheGlob string
}

// MarkerPath returns the absolute path of the marker file.
func (p Project) MarkerPath() string {
	return filepath.Join(p.Root, p.Marker)
}

// CachePattern returns the glob pattern matching the cached profiles.
func (p Project) CachePattern() string {
	return filepath.Join(p.Root, p.CacheDir, p.CacheGlob)
}

// Normalize fills in defaults for any unset field.
func (p Project) Normalize() Project {
	if p.Marker == "" {
		p.Marker = DefaultMarker
	}
	if p.CacheDir == "" {
		p.CacheDir = DefaultCacheDir
	}
	if p.CacheGlob == "" {
		p.CacheGlob = DefaultCacheGlob
	}
	return p
}

// ReloadCommand is the external command that rebuilds the environment.
type ReloadCommand struct {
	// Command is the executable to run.
	Command string

	// Args are the arguments; RootPlaceholder is replaced with the
	// project root.
	Args []string

	// ForceEnv is an extra KEY=VALUE entry added to the command's
	// environment.
	ForceEnv string
}

// Argv returns the full argument vector with the root substituted in.
func (c ReloadCommand) Argv(root string) []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Command)
	for _, arg := range c.Args {
		if arg == RootPlaceholder {
			arg = root
		}
		argv = append(argv, arg)
	}
	return argv
}

// DefaultReloadCommand rebuilds a nix-direnv environment. Evaluating the
// .envrc with the force flag set makes nix-direnv rebuild its cache even
// when it considers the current one fresh.
func DefaultReloadCommand() ReloadCommand {
	return ReloadCommand{
		Command:  "direnv",
		Args:     []string{"exec", RootPlaceholder, "true"},
		ForceEnv: "NIX_DIRENV_FORCE_RELOAD=1",
	}
}

// Settings is the full resolved configuration for one invocation.
type Settings struct {
	Project  Project
	Reload   ReloadCommand
	Debounce time.Duration
}

// Normalize fills in defaults for any unset field.
func (s Settings) Normalize() Settings {
	s.Project = s.Project.Normalize()
	if s.Reload.Command == "" {
		s.Reload = DefaultReloadCommand()
	}
	if s.Debounce <= 0 {
		s.Debounce = DefaultDebounce
	}
	return s
}
