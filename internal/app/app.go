// Package app implements the application layer for skel.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.skel.dev/skel/internal/core/domain"
	"go.skel.dev/skel/internal/core/ports"
	"go.skel.dev/skel/internal/ui/style"
	"go.trai.ch/zerr"
)

// StatusLine is the single line announcing that provisioning has started.
const StatusLine = "Setting up project workspace..."

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provisioner  ports.Provisioner
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	provisioner ports.Provisioner,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		provisioner:  provisioner,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithStdout redirects status output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ProvisionOptions configuration for the Provision method.
type ProvisionOptions struct {
	DryRun bool
}

// Provision ensures the workspace directory tree exists and writes the pinned
// dependency manifest, truncating any prior content. Directory creation is
// idempotent; the first filesystem failure aborts the remaining steps.
func (a *App) Provision(_ context.Context, opts ProvisionOptions) error {
	blueprint, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load blueprint")
	}

	if opts.DryRun {
		for _, dir := range blueprint.Dirs {
			_, _ = fmt.Fprintln(a.stdout, "would create "+dir)
		}
		_, _ = fmt.Fprintln(a.stdout, "would write "+domain.DefaultManifestPath())
		return nil
	}

	// Announce before mutating anything.
	_, _ = fmt.Fprintln(a.stdout, StatusLine)

	if err := a.provisioner.EnsureTree(".", blueprint); err != nil {
		return err
	}

	if err := a.provisioner.WriteManifest(".", blueprint.Manifest); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf(
		"%s workspace ready: %d directories, %d pinned dependencies",
		style.Check, len(blueprint.Dirs), len(blueprint.Manifest.Pins),
	))
	return nil
}

// Audit checks the workspace against its blueprint without mutating it.
// Returns an error wrapping domain.ErrWorkspaceDrift when out of sync.
func (a *App) Audit(ctx context.Context) error {
	blueprint, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load blueprint")
	}

	if err := a.provisioner.Audit(ctx, ".", blueprint); err != nil {
		return err
	}

	a.logger.Info(style.Check + " workspace matches blueprint")
	return nil
}
