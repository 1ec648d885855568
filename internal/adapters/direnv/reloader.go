// Package direnv invokes direnv to force a rebuild of a cached environment.
package direnv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reloader = (*Reloader)(nil)

// Reloader implements ports.Reloader by running the configured reload
// command as a subprocess.
type Reloader struct {
	logger ports.Logger
}

// NewReloader creates a new Reloader.
func NewReloader(logger ports.Logger) *Reloader {
	return &Reloader{logger: logger}
}

// Reload runs the reload command synchronously against the project root.
// The force-rebuild variable is appended to the inherited environment so
// direnv (or nix-direnv underneath it) ignores its cache and reevaluates.
//
// The subprocess's stdout and stderr are captured, not streamed: the command
// exists for its side effect, and its output only matters for diagnostics.
// On a non-zero exit the returned error is a *domain.ExitError carrying the
// subprocess exit code and the captured output.
func (r *Reloader) Reload(ctx context.Context, root string, cmd domain.ReloadCommand) error {
	argv := cmd.Argv(root)
	if len(argv) == 0 || argv[0] == "" {
		return domain.ErrReloadStartFailed
	}

	r.logger.Info("reloading environment: " + strings.Join(argv, " "))

	//nolint:gosec // The command comes from the user's own configuration.
	proc := exec.CommandContext(ctx, argv[0], argv[1:]...)
	proc.Dir = root

	env := os.Environ()
	if cmd.ForceEnv != "" {
		env = append(env, cmd.ForceEnv)
	}
	proc.Env = env

	var output bytes.Buffer
	proc.Stdout = &output
	proc.Stderr = &output

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cause := zerr.With(
				zerr.With(domain.ErrReloadFailed, "command", strings.Join(argv, " ")),
				"output", strings.TrimSpace(output.String()),
			)
			return &domain.ExitError{Code: exitErr.ExitCode(), Err: cause}
		}
		return zerr.With(
			errors.Join(domain.ErrReloadStartFailed, err),
			"command", argv[0],
		)
	}

	return nil
}
