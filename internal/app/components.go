package app

import (
	"github.com/statline/statline/internal/core/ports"
)

// Components contains all the initialized application components. This
// struct provides controlled access to the pieces the CLI layer needs.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	ScriptWriter ports.ScriptWriter
}
