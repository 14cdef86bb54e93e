package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one selectable knowledge entry. A Source with an empty Path
// carries no knowledge and loads to the empty string.
type Source struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	Path string `yaml:"path"`
}

// Load renders the source's document into a flattened text block.
func (s Source) Load() (string, error) {
	if s.Path == "" {
		return "", nil
	}
	return Load(s.Kind, s.Path)
}

// DefaultCatalog returns the built-in source list: a blank general source
// plus the PII taxonomy and MQ topic catalog files.
func DefaultCatalog(piiPath, mqPath string) []Source {
	return []Source{
		{Name: "General (no knowledge)"},
		{Name: "PII categories", Kind: KindPII, Path: piiPath},
		{Name: "MQ topics", Kind: KindMQ, Path: mqPath},
	}
}

type catalogFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadCatalog parses a YAML source catalog. Entries must carry a name, and a
// non-empty path requires a known kind.
func LoadCatalog(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse source catalog %s: %w", path, err)
	}
	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("source catalog %s: no sources defined", path)
	}
	for i, src := range file.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("source catalog %s: source %d has no name", path, i)
		}
		if src.Path != "" && src.Kind != KindPII && src.Kind != KindMQ {
			return nil, fmt.Errorf("source catalog %s: source %q has unknown kind %q", path, src.Name, src.Kind)
		}
	}
	return file.Sources, nil
}
