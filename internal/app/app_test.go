package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skel.dev/skel/internal/app"
	"go.skel.dev/skel/internal/core/domain"
	"go.skel.dev/skel/internal/core/ports/mocks"
	"go.skel.dev/skel/internal/ui/style"
	"go.uber.org/mock/gomock"
)

func TestApp_Provision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	blueprint := domain.DefaultBlueprint()
	stdout := new(bytes.Buffer)

	a := app.New(mockLoader, mockProvisioner, mockLogger).WithStdout(stdout)

	mockLoader.EXPECT().Load(".").Return(blueprint, nil)
	mockProvisioner.EXPECT().EnsureTree(".", blueprint).Return(nil)
	mockProvisioner.EXPECT().WriteManifest(".", blueprint.Manifest).Return(nil)
	mockLogger.EXPECT().Info(style.Check + " workspace ready: 8 directories, 4 pinned dependencies")

	err := a.Provision(context.Background(), app.ProvisionOptions{})
	require.NoError(t, err)
	assert.Equal(t, app.StatusLine+"\n", stdout.String())
}

func TestApp_Provision_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	a := app.New(mockLoader, mockProvisioner, mockLogger).WithStdout(stdout)

	// No EnsureTree/WriteManifest expectations: dry-run must not touch the
	// provisioner at all.
	mockLoader.EXPECT().Load(".").Return(domain.DefaultBlueprint(), nil)

	err := a.Provision(context.Background(), app.ProvisionOptions{DryRun: true})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "would create config")
	assert.Contains(t, out, "would create powerbi")
	assert.Contains(t, out, "would write requirements.txt")
	assert.NotContains(t, out, app.StatusLine)
}

func TestApp_Provision_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	a := app.New(mockLoader, mockProvisioner, mockLogger).WithStdout(stdout)

	mockLoader.EXPECT().Load(".").Return(domain.Blueprint{}, errors.New("bad config"))

	err := a.Provision(context.Background(), app.ProvisionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load blueprint")
	assert.Empty(t, stdout.String())
}

func TestApp_Provision_EnsureTreeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	blueprint := domain.DefaultBlueprint()
	a := app.New(mockLoader, mockProvisioner, mockLogger).WithStdout(new(bytes.Buffer))

	mockLoader.EXPECT().Load(".").Return(blueprint, nil)
	// The manifest must not be written when directory creation fails.
	mockProvisioner.EXPECT().EnsureTree(".", blueprint).Return(domain.ErrPathNotDirectory)

	err := a.Provision(context.Background(), app.ProvisionOptions{})
	require.ErrorIs(t, err, domain.ErrPathNotDirectory)
}

func TestApp_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	blueprint := domain.DefaultBlueprint()
	a := app.New(mockLoader, mockProvisioner, mockLogger)

	mockLoader.EXPECT().Load(".").Return(blueprint, nil)
	mockProvisioner.EXPECT().Audit(gomock.Any(), ".", blueprint).Return(nil)
	mockLogger.EXPECT().Info(style.Check + " workspace matches blueprint")

	require.NoError(t, a.Audit(context.Background()))
}

func TestApp_Audit_Drift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockProvisioner := mocks.NewMockProvisioner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	blueprint := domain.DefaultBlueprint()
	a := app.New(mockLoader, mockProvisioner, mockLogger)

	mockLoader.EXPECT().Load(".").Return(blueprint, nil)
	mockProvisioner.EXPECT().
		Audit(gomock.Any(), ".", blueprint).
		Return(domain.ErrWorkspaceDrift)

	err := a.Audit(context.Background())
	require.ErrorIs(t, err, domain.ErrWorkspaceDrift)
}
