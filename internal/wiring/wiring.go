// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/statline/statline/internal/adapters/cache"
	_ "github.com/statline/statline/internal/adapters/config"
	_ "github.com/statline/statline/internal/adapters/fs"
	_ "github.com/statline/statline/internal/adapters/logger"
	_ "github.com/statline/statline/internal/adapters/shell"
	_ "github.com/statline/statline/internal/adapters/telemetry"
	_ "github.com/statline/statline/internal/adapters/template"
	// Register app nodes.
	_ "github.com/statline/statline/internal/app"
)
