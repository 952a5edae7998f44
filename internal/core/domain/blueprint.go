// Package domain holds the core value types for workspace provisioning.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Blueprint describes a workspace: the directory tree to ensure and the
// dependency manifest to write. Directories are relative to the workspace root
// and provisioned in declaration order.
type Blueprint struct {
	Dirs     []string
	Manifest Manifest
}

// DefaultBlueprint returns the built-in workspace blueprint.
func DefaultBlueprint() Blueprint {
	return Blueprint{
		Dirs:     DefaultDirs(),
		Manifest: DefaultManifest(),
	}
}

// Validate checks the blueprint for entries the provisioner must never act on:
// empty or absolute directory paths, paths escaping the workspace root,
// duplicates, and pins without a name or version.
func (b Blueprint) Validate() error {
	seen := make(map[string]bool, len(b.Dirs))

	for _, dir := range b.Dirs {
		if dir == "" {
			return ErrEmptyDirEntry
		}
		if filepath.IsAbs(dir) {
			return zerr.With(zerr.Wrap(ErrDirOutsideRoot, "invalid blueprint entry "+dir), "dir", dir)
		}
		clean := filepath.Clean(dir)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return zerr.With(zerr.Wrap(ErrDirOutsideRoot, "invalid blueprint entry "+dir), "dir", dir)
		}
		if seen[clean] {
			return zerr.With(zerr.Wrap(ErrDuplicateDirEntry, "invalid blueprint entry "+dir), "dir", dir)
		}
		seen[clean] = true
	}

	for _, p := range b.Manifest.Pins {
		if p.Name == "" || p.Version == "" {
			return zerr.With(zerr.Wrap(ErrInvalidPin, "invalid blueprint pin"), "name", p.Name)
		}
	}

	return nil
}
