// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kiln/internal/adapters/config"
	_ "go.trai.ch/kiln/internal/adapters/fs"
	_ "go.trai.ch/kiln/internal/adapters/logger"
	_ "go.trai.ch/kiln/internal/adapters/pkgconfig"
	_ "go.trai.ch/kiln/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/kiln/internal/app"
	_ "go.trai.ch/kiln/internal/engine/cleaner"
	_ "go.trai.ch/kiln/internal/engine/planner"
	_ "go.trai.ch/kiln/internal/engine/runner"
)
