package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the pinned dependency manifest.
	ManifestFileName = "requirements.txt"

	// ConfigFileName is the name of the optional blueprint override file.
	ConfigFileName = "skel.yaml"

	// DataDirName is the name of the data directory grouping raw, processed
	// and backup trees.
	DataDirName = "data"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDirs returns the workspace directory tree in provisioning order.
// Nested entries rely on the provisioner creating missing parents.
func DefaultDirs() []string {
	return []string{
		"config",
		"src",
		filepath.Join(DataDirName, "raw"),
		filepath.Join(DataDirName, "processed"),
		filepath.Join(DataDirName, "backup"),
		"logs",
		"docs",
		"powerbi",
	}
}

// DefaultManifestPath returns the manifest path relative to the workspace root.
func DefaultManifestPath() string {
	return ManifestFileName
}
