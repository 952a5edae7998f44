package ports

import (
	"context"

	"go.skel.dev/skel/internal/core/domain"
)

// Provisioner defines the interface for materializing and auditing a
// workspace blueprint on the filesystem.
//
//go:generate mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type Provisioner interface {
	// EnsureTree creates every blueprint directory under root, including
	// missing parents. Directories that already exist are left untouched.
	// It fails if a blueprint path exists as a regular file.
	EnsureTree(root string, b domain.Blueprint) error

	// WriteManifest writes the rendered manifest under root, truncating any
	// existing content.
	WriteManifest(root string, manifest domain.Manifest) error

	// Audit checks the workspace under root against the blueprint without
	// mutating it. It returns an error describing the first drift found.
	Audit(ctx context.Context, root string, b domain.Blueprint) error
}
