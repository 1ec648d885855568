// Package config provides the configuration loader for foxtail.
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for, walking up from the
// working directory.
const FileName = "foxtail.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration and returns fully normalized settings.
// Resolution order: an explicit --config path wins; otherwise foxtail.yaml
// is searched upward from cwd. With a --root override a missing config file
// is fine and every other setting takes its default.
func (l *Loader) Load(cwd string, opts ports.LoadOptions) (*domain.Settings, error) {
	configPath, err := l.findConfiguration(cwd, opts)
	if err != nil {
		return nil, err
	}

	var file File
	if configPath != "" {
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, err
		}
	}

	settings, err := toSettings(&file)
	if err != nil {
		return nil, err
	}

	if opts.Root != "" {
		settings.Project.Root = opts.Root
	}
	if settings.Project.Root == "" {
		return nil, zerr.With(domain.ErrConfigInvalid, "hint", "set project.root in "+FileName+" or pass --root")
	}

	root, err := resolveRoot(configPath, settings.Project.Root)
	if err != nil {
		return nil, err
	}
	settings.Project.Root = root

	normalized := settings.Normalize()
	return &normalized, nil
}

func (l *Loader) findConfiguration(cwd string, opts ports.LoadOptions) (string, error) {
	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "explicit config path does not exist"), "path", opts.ConfigPath)
		}
		return opts.ConfigPath, nil
	}

	// Walking up requires an absolute starting point; filepath.Dir of a
	// relative "." never reaches the filesystem root.
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if opts.Root != "" {
		// No config file needed: the root override plus defaults is a
		// complete configuration.
		return "", nil
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func readAndUnmarshalYAML(path string, out *File) error {
	//nolint:gosec // Path comes from discovery or an explicit flag.
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return nil
}

func toSettings(file *File) (domain.Settings, error) {
	settings := domain.Settings{
		Project: domain.Project{
			Root:      file.Project.Root,
			Marker:    file.Project.Marker,
			CacheDir:  file.Project.CacheDir,
			CacheGlob: file.Project.CacheGlob,
		},
	}

	if file.Direnv.Command != "" {
		settings.Reload = domain.ReloadCommand{
			Command:  file.Direnv.Command,
			Args:     file.Direnv.Args,
			ForceEnv: file.Direnv.ForceEnv,
		}
	}

	if file.Watch.Debounce != "" {
		d, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil {
			return domain.Settings{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "field", "watch.debounce")
		}
		settings.Debounce = d
	}

	return settings, nil
}

// resolveRoot makes the project root absolute. A leading ~ expands to the
// user home directory; a relative path is resolved against the config file's
// directory, falling back to the process working directory when the settings
// came entirely from flags.
func resolveRoot(configPath, root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve home directory")
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}

	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}

	base := ""
	if configPath != "" {
		base = filepath.Dir(configPath)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve working directory")
		}
		base = cwd
	}

	return filepath.Clean(filepath.Join(base, root)), nil
}
