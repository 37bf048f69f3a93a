// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depconflict/internal/adapters/cas"
	_ "go.trai.ch/depconflict/internal/adapters/config"
	_ "go.trai.ch/depconflict/internal/adapters/fs"
	_ "go.trai.ch/depconflict/internal/adapters/logger"
	_ "go.trai.ch/depconflict/internal/adapters/manifest"
	_ "go.trai.ch/depconflict/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/depconflict/internal/app"
)
