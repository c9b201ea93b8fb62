// Package manifest reads solar.yaml project manifests.
package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// FileName is the manifest file every project root must contain.
const FileName = "solar.yaml"

// depKeyPattern validates "name(publisher)" dependency keys.
var depKeyPattern = regexp.MustCompile(`^[^()]+\([^()]*\)$`)

// Manifest is the parsed contents of a solar.yaml file.
type Manifest struct {
	Name         string            `yaml:"name"`
	Publisher    string            `yaml:"publisher,omitempty"`
	Version      string            `yaml:"version"`
	Description  string            `yaml:"description,omitempty"`
	Author       string            `yaml:"author,omitempty"`
	Authors      []string          `yaml:"authors,omitempty"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

// Dependency is a single resolved entry of Manifest.Dependencies: the
// library short name, its publisher, and either a plain version or a
// repo@version pair.
type Dependency struct {
	Name      string
	Publisher string
	Version   string
	Repo      string // empty unless the manifest value contained "repo@version"
}

// Load reads and parses the manifest at <root>/solar.yaml.
func Load(root string) (*Manifest, error) {
	path := root + "/" + FileName
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: malformed %s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest: %s is missing required field 'name'", path)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("manifest: %s is missing required field 'version'", path)
	}
	for key := range m.Dependencies {
		if !depKeyPattern.MatchString(key) {
			return nil, fmt.Errorf("manifest: %s: dependency key %q does not match name(publisher)", path, key)
		}
	}
	return &m, nil
}

// Dependencies returns the manifest's dependency list as parsed
// Dependency records, splitting "name(publisher)" keys and
// "repo@version" values.
func (m *Manifest) Dependencies() ([]Dependency, error) {
	deps := make([]Dependency, 0, len(m.Dependencies))
	for key, value := range m.Dependencies {
		open := strings.IndexByte(key, '(')
		close := strings.IndexByte(key, ')')
		if open < 0 || close < open {
			return nil, fmt.Errorf("manifest: malformed dependency key %q", key)
		}
		name := key[:open]
		publisher := key[open+1 : close]

		dep := Dependency{Name: name, Publisher: publisher}
		if at := strings.IndexByte(value, '@'); at >= 0 {
			dep.Repo = value[:at]
			dep.Version = value[at+1:]
		} else {
			dep.Version = value
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// Basepath renders the "name(publisher)" segment used as an IdPath
// component for this dependency.
func (d Dependency) Basepath() string {
	return d.Name + "(" + d.Publisher + ")"
}
