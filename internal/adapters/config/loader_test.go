package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heph2/foxtail/internal/adapters/config"
	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"github.com/heph2/foxtail/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DiscoversUpward(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: \"1\"\nproject:\n  root: proj\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	settings, err := newLoader(t).Load(nested, ports.LoadOptions{})
	require.NoError(t, err)

	// Relative root resolves against the config file's directory.
	assert.Equal(t, filepath.Join(dir, "proj"), settings.Project.Root)
	assert.Equal(t, domain.DefaultMarker, settings.Project.Marker)
	assert.Equal(t, domain.DefaultCacheDir, settings.Project.CacheDir)
	assert.Equal(t, domain.DefaultCacheGlob, settings.Project.CacheGlob)
	assert.Equal(t, domain.DefaultReloadCommand(), settings.Reload)
	assert.Equal(t, domain.DefaultDebounce, settings.Debounce)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `version: "1"
project:
  root: /work/svc
  marker: shell.nix
  cache_dir: .cache
  cache_glob: "*.profile"
direnv:
  command: direnv
  args: [exec, "{root}", "true"]
  force_env: NIX_DIRENV_FORCE_RELOAD=1
watch:
  debounce: 250ms
`)

	settings, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/work/svc", settings.Project.Root)
	assert.Equal(t, "shell.nix", settings.Project.Marker)
	assert.Equal(t, ".cache", settings.Project.CacheDir)
	assert.Equal(t, "*.profile", settings.Project.CacheGlob)
	assert.Equal(t, []string{"direnv", "exec", "/work/svc", "true"}, settings.Reload.Argv(settings.Project.Root))
	assert.Equal(t, 250*time.Millisecond, settings.Debounce)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir(), ports.LoadOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoad_RootOverrideWithoutConfig(t *testing.T) {
	settings, err := newLoader(t).Load(t.TempDir(), ports.LoadOptions{Root: "/work/svc"})

	require.NoError(t, err)
	assert.Equal(t, "/work/svc", settings.Project.Root)
	assert.Equal(t, domain.DefaultReloadCommand(), settings.Reload)
}

func TestLoad_RootOverrideBeatsConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project:\n  root: /configured\n")

	settings, err := newLoader(t).Load(dir, ports.LoadOptions{Root: "/override"})
	require.NoError(t, err)
	assert.Equal(t, "/override", settings.Project.Root)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "project:\n  root: /work/svc\n")

	settings, err := newLoader(t).Load(t.TempDir(), ports.LoadOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/work/svc", settings.Project.Root)
}

func TestLoad_ExplicitConfigPathMissing(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir(), ports.LoadOptions{ConfigPath: "/nope/foxtail.yaml"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoad_MissingRoot(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: \"1\"\n")

	_, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigInvalid))
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project: [not a mapping\n")

	_, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project:\n  root: /p\n  markerfile: oops\n")

	_, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoad_BadDebounce(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project:\n  root: /p\nwatch:\n  debounce: soon\n")

	_, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoad_TildeExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	writeConfig(t, dir, "project:\n  root: ~/svc\n")

	settings, err := newLoader(t).Load(dir, ports.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "svc"), settings.Project.Root)
}
