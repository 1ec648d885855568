package ports

import (
	"context"

	"github.com/heph2/foxtail/internal/core/domain"
)

// Reloader invokes the external environment-reload mechanism.
//
//go:generate mockgen -source=reloader.go -destination=mocks/mock_reloader.go -package=mocks
type Reloader interface {
	// Reload runs the reload command synchronously against the project
	// root with the force-rebuild variable set. A non-zero exit from the
	// subprocess is returned as a *domain.ExitError carrying its code.
	Reload(ctx context.Context, root string, cmd domain.ReloadCommand) error
}
