package ports

import "go.skel.dev/skel/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace blueprint.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers an optional skel.yaml starting at cwd and walking up,
	// and returns the resulting blueprint. When no config file is found the
	// built-in default blueprint is returned.
	Load(cwd string) (domain.Blueprint, error)
}
