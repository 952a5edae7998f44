// Package fs implements workspace provisioning on the local filesystem.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.skel.dev/skel/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Provisioner implements ports.Provisioner against the local filesystem.
type Provisioner struct{}

// NewProvisioner creates a new filesystem Provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// EnsureTree creates every blueprint directory under root in declaration
// order, including missing parents. Existing directories are left untouched.
// A blueprint path that exists as a regular file fails the run; creation is
// never forced over it.
func (p *Provisioner) EnsureTree(root string, b domain.Blueprint) error {
	for _, dir := range b.Dirs {
		path := filepath.Join(root, dir)

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return zerr.With(zerr.Wrap(domain.ErrPathNotDirectory, "cannot create "+dir), "path", dir)
		}

		if err := os.MkdirAll(path, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrDirCreateFailed.Error())
		}
	}
	return nil
}

// WriteManifest renders the manifest and writes it under root, truncating any
// existing content. The write is a plain truncate-and-rewrite: last writer
// wins under concurrent invocation.
func (p *Provisioner) WriteManifest(root string, m domain.Manifest) error {
	path := filepath.Join(root, domain.DefaultManifestPath())

	//nolint:gosec // Path is the fixed manifest name under the workspace root
	if err := os.WriteFile(path, []byte(m.Render()), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

// Audit checks the workspace under root against the blueprint without
// mutating it. Directory checks run concurrently; the first drift found is
// returned, wrapped in ErrWorkspaceDrift.
func (p *Provisioner) Audit(ctx context.Context, root string, b domain.Blueprint) error {
	g, _ := errgroup.WithContext(ctx)

	for _, dir := range b.Dirs {
		g.Go(func() error {
			path := filepath.Join(root, dir)
			info, err := os.Stat(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return zerr.With(zerr.Wrap(domain.ErrDirMissing, "expected directory "+dir), "dir", dir)
				}
				return err
			}
			if !info.IsDir() {
				return zerr.With(zerr.Wrap(domain.ErrPathNotDirectory, "expected directory "+dir), "path", dir)
			}
			return nil
		})
	}

	g.Go(func() error {
		return auditManifest(root, b.Manifest)
	})

	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrWorkspaceDrift, err)
	}
	return nil
}

func auditManifest(root string, m domain.Manifest) error {
	path := filepath.Join(root, domain.DefaultManifestPath())

	//nolint:gosec // Path is the fixed manifest name under the workspace root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrManifestMissing, "expected "+domain.DefaultManifestPath())
		}
		return err
	}

	if xxhash.Sum64(data) != m.Checksum() {
		return zerr.Wrap(domain.ErrManifestDrift, domain.DefaultManifestPath()+" differs from blueprint")
	}
	return nil
}
