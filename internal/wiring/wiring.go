// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/heph2/foxtail/internal/adapters/config"
	_ "github.com/heph2/foxtail/internal/adapters/direnv"
	_ "github.com/heph2/foxtail/internal/adapters/fs"
	_ "github.com/heph2/foxtail/internal/adapters/logger"
	_ "github.com/heph2/foxtail/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/heph2/foxtail/internal/app"
)
