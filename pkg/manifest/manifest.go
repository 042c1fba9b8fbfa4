// Package manifest reads the declarative package list that drives
// resolution. Manifests are YAML by default, with TOML supported for
// .toml files; both describe the same package fields.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Package describes one software package whose latest release should be
// resolved. URL is the only mandatory field; packages without one are
// dropped during loading and never reach the resolver.
type Package struct {
	Name              string `yaml:"name" toml:"name"`
	ID                string `yaml:"id" toml:"id"`
	URL               string `yaml:"url" toml:"url"`
	IncludePrerelease bool   `yaml:"include_prerelease" toml:"include_prerelease"`
	Pattern           string `yaml:"pattern" toml:"pattern"`
}

// UnmarshalYAML accepts two entry shapes: the usual mapping form, and a
// shorthand sequence form [name, id, url] for packages that need no
// pre-release flag or asset pattern.
func (p *Package) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		type plain Package // avoid recursing into this method
		var aux plain
		if err := value.Decode(&aux); err != nil {
			return err
		}
		*p = Package(aux)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		if len(items) < 3 {
			return fmt.Errorf("list entry needs name, id and url, got %d items", len(items))
		}
		*p = Package{Name: items[0], ID: items[1], URL: items[2]}
		return nil
	default:
		return fmt.Errorf("package entry must be a mapping or a list, got %v", value.Kind)
	}
}

// Load reads the manifest at path and returns its valid packages in file
// order. Entries that are malformed or lack a URL are skipped, reported
// through logf (which may be nil), and never returned.
func Load(path string, logf func(format string, args ...any)) ([]Package, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var entries []yamlOrTOMLEntry
	switch filepath.Ext(path) {
	case ".toml":
		entries, err = decodeTOML(data)
	default:
		entries, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var packages []Package
	for _, e := range entries {
		p, err := e.decode()
		if err != nil {
			logf("skipping malformed package entry: %v", err)
			continue
		}
		if p.URL == "" {
			logf("skipping package without URL: %s", p.Name)
			continue
		}
		packages = append(packages, p)
	}
	return packages, nil
}

// yamlOrTOMLEntry defers per-entry decoding so one bad entry is skipped
// instead of failing the whole manifest.
type yamlOrTOMLEntry struct {
	yaml *yaml.Node
	pkg  Package // already decoded, for TOML
}

func (e yamlOrTOMLEntry) decode() (Package, error) {
	if e.yaml == nil {
		return e.pkg, nil
	}
	var p Package
	err := e.yaml.Decode(&p)
	return p, err
}

func decodeYAML(data []byte) ([]yamlOrTOMLEntry, error) {
	var doc struct {
		Packages []yaml.Node `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	entries := make([]yamlOrTOMLEntry, len(doc.Packages))
	for i := range doc.Packages {
		entries[i] = yamlOrTOMLEntry{yaml: &doc.Packages[i]}
	}
	return entries, nil
}

func decodeTOML(data []byte) ([]yamlOrTOMLEntry, error) {
	var doc struct {
		Packages []Package `toml:"packages"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	entries := make([]yamlOrTOMLEntry, len(doc.Packages))
	for i, p := range doc.Packages {
		entries[i] = yamlOrTOMLEntry{pkg: p}
	}
	return entries, nil
}
