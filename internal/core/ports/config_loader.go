package ports

import "github.com/heph2/foxtail/internal/core/domain"

// LoadOptions carry command-line overrides into configuration loading.
type LoadOptions struct {
	// ConfigPath, when set, is used instead of the upward search.
	ConfigPath string
	// Root, when set, overrides the configured project root. A missing
	// config file is not an error in that case.
	Root string
}

// ConfigLoader loads the resolved settings for a run.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory and returns fully normalized settings.
	Load(cwd string, opts LoadOptions) (*domain.Settings, error)
}
