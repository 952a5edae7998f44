package config

// Skelfile represents the structure of the skel.yaml configuration file.
// Both sections are optional; an omitted section falls back to the
// built-in default.
type Skelfile struct {
	Version      string   `yaml:"version"`
	Dirs         []string `yaml:"dirs"`
	Requirements []string `yaml:"requirements"`
}
