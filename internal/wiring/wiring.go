// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/desk/internal/adapters/config"
	_ "go.trai.ch/desk/internal/adapters/controllers"
	_ "go.trai.ch/desk/internal/adapters/fs"
	_ "go.trai.ch/desk/internal/adapters/i18n"
	_ "go.trai.ch/desk/internal/adapters/logger"
	_ "go.trai.ch/desk/internal/adapters/telemetry"
	_ "go.trai.ch/desk/internal/adapters/viewdef"
	// Register app and engine nodes.
	_ "go.trai.ch/desk/internal/app"
	_ "go.trai.ch/desk/internal/engine/validation"
	_ "go.trai.ch/desk/internal/engine/viewloader"
	// Register controller nodes.
	_ "go.trai.ch/desk/internal/gui/home"
	_ "go.trai.ch/desk/internal/gui/settings"
	_ "go.trai.ch/desk/internal/gui/trade"
)
