// Package project implements the project loader (§4.1): reading solar.yaml
// manifests and computing the transitive closure of declared dependencies.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/manifest"
	"github.com/solarlang/solar/internal/set"
	"github.com/tidwall/btree"
)

// Project is one loaded project: its basepath, filesystem root, a
// short-name-to-IdPath map of its direct dependencies, and its manifest.
type Project struct {
	Basepath idpath.Path
	FSRoot   string
	DepMap   map[string]idpath.Path
	Manifest *manifest.Manifest
}

// Info is the ordered map from IdPath to Project the loader produces.
// Backed by btree.Map keyed by the basepath string, so iteration follows
// the lexical order of those keys; the loader's post-order insertion
// (dependencies before the project that requires them) is not kept.
type Info struct {
	byKey btree.Map[string, *Project]
}

func (pi *Info) Get(p idpath.Path) (*Project, bool) {
	return pi.byKey.Get(p.String())
}

func (pi *Info) Set(p idpath.Path, proj *Project) {
	pi.byKey.Set(p.String(), proj)
}

// Iter calls fn for every project in lexical order of its basepath string.
func (pi *Info) Iter(fn func(idpath.Path, *Project)) {
	pi.byKey.Scan(func(key string, proj *Project) bool {
		fn(proj.Basepath, proj)
		return true
	})
}

// Len reports how many projects have been loaded.
func (pi *Info) Len() int {
	return pi.byKey.Len()
}

// solarPath resolves $SOLAR_PATH, defaulting to ~/.solar/ (§6).
func solarPath() (string, error) {
	if p := os.Getenv("SOLAR_PATH"); p != "" {
		return p, nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("project: HOME is required to expand the default SOLAR_PATH")
	}
	return filepath.Join(home, ".solar"), nil
}

// Load reads the project at root (the target project, basepath ["self"])
// and recursively loads the transitive closure of its dependencies.
// Insertion into the returned Info is post-order: a dependency is
// present before any project that requires it. Cycles are prevented by
// skipping any basepath already present.
func Load(root string) (*Info, error) {
	info := &Info{}
	visited := set.NewSet[string]()

	sp, err := solarPath()
	if err != nil {
		return nil, err
	}

	if err := loadOne(info, visited, root, idpath.Self, sp); err != nil {
		return nil, err
	}
	return info, nil
}

func loadOne(info *Info, visited set.Set[string], root string, basepath idpath.Path, sp string) error {
	key := basepath.String()
	if visited.Contains(key) {
		return nil
	}
	visited.Add(key)

	m, err := manifest.Load(root)
	if err != nil {
		return fmt.Errorf("project %s: %w", key, err)
	}

	deps, err := m.Dependencies()
	if err != nil {
		return fmt.Errorf("project %s: %w", key, err)
	}

	depMap := make(map[string]idpath.Path, len(deps))
	for _, dep := range deps {
		depBasepath := idpath.New(dep.Basepath(), dep.Version)
		depMap[dep.Name] = depBasepath

		if visited.Contains(depBasepath.String()) {
			continue
		}

		depRoot := filepath.Join(sp, "libraries", filepath.Join(strings.Split(depBasepath.String(), "/")...))
		if _, statErr := os.Stat(depRoot); statErr != nil {
			return fmt.Errorf("project %s: dependency directory missing: %s", key, depRoot)
		}

		if err := loadOne(info, visited, depRoot, depBasepath, sp); err != nil {
			return err
		}
	}

	info.Set(basepath, &Project{
		Basepath: basepath,
		FSRoot:   root,
		DepMap:   depMap,
		Manifest: m,
	})
	return nil
}
