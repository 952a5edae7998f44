// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.skel.dev/skel/internal/adapters/config"
	_ "go.skel.dev/skel/internal/adapters/fs"
	_ "go.skel.dev/skel/internal/adapters/logger"
	// Register app nodes.
	_ "go.skel.dev/skel/internal/app"
)
