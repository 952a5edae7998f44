package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyDirEntry is returned when a blueprint contains an empty directory entry.
	ErrEmptyDirEntry = zerr.New("blueprint contains an empty directory entry")

	// ErrDirOutsideRoot is returned when a blueprint directory is absolute or escapes the workspace root.
	ErrDirOutsideRoot = zerr.New("directory path is outside the workspace root")

	// ErrDuplicateDirEntry is returned when a blueprint lists the same directory twice.
	ErrDuplicateDirEntry = zerr.New("duplicate directory entry")

	// ErrInvalidPin is returned when a dependency pin is missing a name or version.
	ErrInvalidPin = zerr.New("invalid dependency pin, expected format: name==version")

	// ErrConfigReadFailed is returned when the blueprint config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the blueprint config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDirCreateFailed is returned when a workspace directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrPathNotDirectory is returned when a blueprint path exists as a regular file.
	ErrPathNotDirectory = zerr.New("path exists but is not a directory")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestMissing is returned by audit when the manifest does not exist.
	ErrManifestMissing = zerr.New("manifest not found")

	// ErrManifestDrift is returned by audit when the manifest content does not
	// match the blueprint.
	ErrManifestDrift = zerr.New("manifest content does not match blueprint")

	// ErrDirMissing is returned by audit when a blueprint directory does not exist.
	ErrDirMissing = zerr.New("directory not found")

	// ErrWorkspaceDrift is returned when an audit finds the workspace out of
	// sync with its blueprint.
	ErrWorkspaceDrift = zerr.New("workspace does not match blueprint")
)
