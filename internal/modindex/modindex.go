// Package modindex implements the module indexer (§4.2): walking each
// project's filesystem root, parsing every .sol source file, and
// grouping files into Modules keyed by IdPath.
package modindex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/parser"
	"github.com/solarlang/solar/internal/project"
	"github.com/tidwall/btree"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Module is the set of .sol files sharing one directory (and therefore
// one IdPath) within a project.
type Module struct {
	ProjectId idpath.Path
	Files     []*ast.File
}

// Global is the mapping from IdPath to Module produced across every
// loaded project, backed by a btree.Map keyed by the IdPath string, so
// iteration follows the lexical order of those keys, as in the project
// loader's Info.
type Global struct {
	byKey btree.Map[string, *Module]
}

func (g *Global) Get(p idpath.Path) (*Module, bool) {
	return g.byKey.Get(p.String())
}

func (g *Global) Iter(fn func(idpath.Path, *Module)) {
	g.byKey.Scan(func(key string, m *Module) bool {
		fn(idpath.New(strings.Split(key, "/")...), m)
		return true
	})
}

func (g *Global) getOrCreate(p idpath.Path, projectId idpath.Path) *Module {
	key := p.String()
	if m, ok := g.byKey.Get(key); ok {
		return m
	}
	m := &Module{ProjectId: projectId}
	g.byKey.Set(key, m)
	return m
}

// NewForTest returns an empty Global for tests that need to exercise
// code operating on a Global without running the full project
// loader/indexer pipeline (e.g. the built-in type linker).
func NewForTest() *Global {
	return &Global{}
}

// PutForTest installs mod at p directly, bypassing indexProject.
func (g *Global) PutForTest(p idpath.Path, mod *Module) {
	g.byKey.Set(p.String(), mod)
}

// BuildAll walks every project in info and indexes its .sol files.
func BuildAll(info *project.Info) (*Global, error) {
	global := &Global{}
	var err error
	info.Iter(func(basepath idpath.Path, proj *project.Project) {
		if err != nil {
			return
		}
		err = indexProject(global, proj)
	})
	if err != nil {
		return nil, err
	}
	return global, nil
}

var nextSourceId int

func indexProject(global *Global, proj *project.Project) error {
	return filepath.WalkDir(proj.FSRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".sol") {
			return nil
		}

		rel, err := filepath.Rel(proj.FSRoot, path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(rel)
		var segments []string
		if dir != "." {
			segments = strings.Split(dir, string(filepath.Separator))
		}
		modulePath := proj.Basepath.Append(segments...)

		contents, err := readFile(path)
		if err != nil {
			return fmt.Errorf("modindex: %w", err)
		}

		src := &ast.Source{ID: nextSourceId, Path: path, Contents: contents}
		nextSourceId++

		p := parser.New(src)
		file, parseErrors := p.ParseFile()
		if len(parseErrors) > 0 {
			return fmt.Errorf("modindex: %s: %s", path, parseErrors[0].Error())
		}

		mod := global.getOrCreate(modulePath, proj.Basepath)
		mod.Files = append(mod.Files, file)
		return nil
	})
}
