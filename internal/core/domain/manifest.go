package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Pin is a single pinned dependency entry in the manifest.
type Pin struct {
	Name    string
	Version string
}

// Manifest is an ordered list of pinned dependencies. Order is significant:
// rendering preserves declaration order so the emitted file is byte-stable.
type Manifest struct {
	Pins []Pin
}

// DefaultManifest returns the built-in pinned dependency set.
func DefaultManifest() Manifest {
	return Manifest{Pins: []Pin{
		{Name: "requests", Version: "2.31.0"},
		{Name: "pandas", Version: "2.0.3"},
		{Name: "python-dotenv", Version: "1.0.0"},
		{Name: "openpyxl", Version: "3.1.2"},
	}}
}

// Render produces the manifest file content: one "name==version" line per pin,
// newline-terminated.
func (m Manifest) Render() string {
	var b strings.Builder
	for _, p := range m.Pins {
		b.WriteString(p.Name)
		b.WriteString("==")
		b.WriteString(p.Version)
		b.WriteByte('\n')
	}
	return b.String()
}

// Checksum returns the xxhash digest of the rendered manifest. Two manifests
// with the same checksum render to identical bytes.
func (m Manifest) Checksum() uint64 {
	return xxhash.Sum64String(m.Render())
}

// ParsePin parses a "name==version" specification.
func ParsePin(spec string) (Pin, error) {
	name, version, ok := strings.Cut(spec, "==")
	if !ok || name == "" || version == "" {
		return Pin{}, zerr.With(zerr.Wrap(ErrInvalidPin, "cannot parse "+spec), "spec", spec)
	}
	return Pin{Name: name, Version: version}, nil
}
