// Package config provides the blueprint loader for skel.
package config

import (
	"os"
	"path/filepath"

	"go.skel.dev/skel/internal/core/domain"
	"go.skel.dev/skel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers a skel.yaml starting at cwd and walking up towards the
// filesystem root. When no file is found the built-in default blueprint is
// returned, so a bare invocation needs no configuration at all.
func (l *Loader) Load(cwd string) (domain.Blueprint, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		return domain.DefaultBlueprint(), nil
	}

	return l.loadSkelfile(configPath)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	// Resolve to an absolute path first: walking up from a relative cwd
	// such as "." would terminate immediately.
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func (l *Loader) loadSkelfile(configPath string) (domain.Blueprint, error) {
	//nolint:gosec // Path comes from upward discovery in the user's own tree
	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Blueprint{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var skelfile Skelfile
	if err := yaml.Unmarshal(data, &skelfile); err != nil {
		return domain.Blueprint{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if len(skelfile.Dirs) == 0 && len(skelfile.Requirements) == 0 {
		l.Logger.Warn(domain.ConfigFileName + " overrides nothing, using the built-in blueprint")
	}

	b := domain.DefaultBlueprint()

	if len(skelfile.Dirs) > 0 {
		b.Dirs = skelfile.Dirs
	}

	if len(skelfile.Requirements) > 0 {
		pins := make([]domain.Pin, 0, len(skelfile.Requirements))
		for _, spec := range skelfile.Requirements {
			pin, err := domain.ParsePin(spec)
			if err != nil {
				return domain.Blueprint{}, zerr.With(err, "config", configPath)
			}
			pins = append(pins, pin)
		}
		b.Manifest = domain.Manifest{Pins: pins}
	}

	if err := b.Validate(); err != nil {
		return domain.Blueprint{}, zerr.With(err, "config", configPath)
	}

	return b, nil
}
