// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/leap/internal/adapters/cache"
	_ "go.trai.ch/leap/internal/adapters/command"
	_ "go.trai.ch/leap/internal/adapters/launcher"
	_ "go.trai.ch/leap/internal/adapters/logger"
	_ "go.trai.ch/leap/internal/adapters/registry"
	_ "go.trai.ch/leap/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/leap/internal/app"
)
