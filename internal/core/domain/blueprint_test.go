package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.skel.dev/skel/internal/core/domain"
)

func TestBlueprint_Validate(t *testing.T) {
	tests := []struct {
		name      string
		blueprint domain.Blueprint
		wantErr   error
	}{
		{
			name:      "default blueprint is valid",
			blueprint: domain.DefaultBlueprint(),
		},
		{
			name:      "empty dir entry",
			blueprint: domain.Blueprint{Dirs: []string{"config", ""}},
			wantErr:   domain.ErrEmptyDirEntry,
		},
		{
			name:      "absolute path",
			blueprint: domain.Blueprint{Dirs: []string{string(filepath.Separator) + "etc"}},
			wantErr:   domain.ErrDirOutsideRoot,
		},
		{
			name:      "parent escape",
			blueprint: domain.Blueprint{Dirs: []string{filepath.Join("..", "outside")}},
			wantErr:   domain.ErrDirOutsideRoot,
		},
		{
			name:      "dotdot after cleaning",
			blueprint: domain.Blueprint{Dirs: []string{filepath.Join("data", "..", "..")}},
			wantErr:   domain.ErrDirOutsideRoot,
		},
		{
			name:      "duplicate entry",
			blueprint: domain.Blueprint{Dirs: []string{"logs", "logs"}},
			wantErr:   domain.ErrDuplicateDirEntry,
		},
		{
			name: "duplicate after cleaning",
			blueprint: domain.Blueprint{
				Dirs: []string{"logs", "logs" + string(filepath.Separator)},
			},
			wantErr: domain.ErrDuplicateDirEntry,
		},
		{
			name: "pin without version",
			blueprint: domain.Blueprint{
				Dirs:     []string{"config"},
				Manifest: domain.Manifest{Pins: []domain.Pin{{Name: "requests"}}},
			},
			wantErr: domain.ErrInvalidPin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.blueprint.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
