package resolve

import (
	"testing"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/parser"
	"github.com/solarlang/solar/internal/project"
	"github.com/solarlang/solar/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	p := parser.New(&ast.Source{ID: 0, Path: "fixture.sol", Contents: src})
	file, errs := p.ParseFile()
	require.Empty(t, errs)
	return file
}

func TestFindSymbolMatchesFuncAndSkipsTest(t *testing.T) {
	file := parseFile(t, "fn add(a: Int, b: Int): Int = buildin_add a b\ntest \"t\" = true")
	mod := &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{file}}

	matches := FindSymbol(mod, idpath.Self, "add")
	require.Len(t, matches, 1)
	assert.Equal(t, idpath.Self, matches[0].Module)
}

func TestFindSymbolMatchesGlobalLet(t *testing.T) {
	file := parseFile(t, "let greeting = \"hi\"")
	mod := &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{file}}

	matches := FindSymbol(mod, idpath.Self, "greeting")
	require.Len(t, matches, 1)
}

func TestResolveImportsSelfPrefixedIsProjectRelative(t *testing.T) {
	file := parseFile(t, "use self.util.helper\nfn main() = helper()")
	proj := &project.Project{Basepath: idpath.Self, DepMap: map[string]idpath.Path{}}

	resolver, err := ResolveImports(file, proj)
	require.NoError(t, err)
	require.Contains(t, resolver, "helper")
	assert.Equal(t, idpath.Self.Append("util").String(), resolver["helper"][0].String())
}

func TestResolveImportsLibraryQualified(t *testing.T) {
	file := parseFile(t, "use collections.set.make\nfn main() = make()")
	libPath := idpath.New("collections(corelib)", "2.0.0")
	proj := &project.Project{
		Basepath: idpath.Self,
		DepMap:   map[string]idpath.Path{"collections": libPath},
	}

	resolver, err := ResolveImports(file, proj)
	require.NoError(t, err)
	require.Contains(t, resolver, "make")
	assert.Equal(t, libPath.Append("set").String(), resolver["make"][0].String())
}

func TestResolveImportsUnknownLibraryFails(t *testing.T) {
	file := parseFile(t, "use missinglib.x\nfn main() = x()")
	proj := &project.Project{Basepath: idpath.Self, DepMap: map[string]idpath.Path{}}

	_, err := ResolveImports(file, proj)
	assert.Error(t, err)
}

func TestResolveImportsItemsSelection(t *testing.T) {
	file := parseFile(t, "use self.util.(helper, other)\nfn main() = helper()")
	proj := &project.Project{Basepath: idpath.Self, DepMap: map[string]idpath.Path{}}

	resolver, err := ResolveImports(file, proj)
	require.NoError(t, err)
	assert.Contains(t, resolver, "helper")
	assert.Contains(t, resolver, "other")
}

func TestResolveSymbolLocalScopeShadowsGlobal(t *testing.T) {
	file := parseFile(t, "fn x() = 1")
	mod := &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{file}}
	global := modindex.NewForTest()
	global.PutForTest(idpath.Self, mod)

	sc := scope.New()
	sc.Push("x", 0)

	lk := Lookup{Global: global, ModulePath: idpath.Self, Module: mod, Imports: Resolver{}}
	candidates := ResolveSymbol(lk, ast.Name{Segments: []ast.Ident{{Name: "x"}}}, sc)
	require.Len(t, candidates, 1)
	assert.Equal(t, CandidateLocal, candidates[0].Kind)
}

func TestResolveSymbolFallsBackToModuleAndImports(t *testing.T) {
	mainFile := parseFile(t, "fn main() = helper()")
	utilFile := parseFile(t, "fn helper() = 1")

	global := modindex.NewForTest()
	global.PutForTest(idpath.Self, &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{mainFile}})
	global.PutForTest(idpath.Self.Append("util"), &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{utilFile}})

	resolver := Resolver{"helper": []idpath.Path{idpath.Self.Append("util")}}
	lk := Lookup{Global: global, ModulePath: idpath.Self, Module: mustGetModule(t, global, idpath.Self), Imports: resolver}

	candidates := ResolveSymbol(lk, ast.Name{Segments: []ast.Ident{{Name: "helper"}}}, scope.New())
	require.Len(t, candidates, 1)
	assert.Equal(t, CandidateGlobal, candidates[0].Kind)
}

func TestResolveSymbolSkipsAbsentImportModule(t *testing.T) {
	mainFile := parseFile(t, "fn main() = helper()")
	global := modindex.NewForTest()
	global.PutForTest(idpath.Self, &modindex.Module{ProjectId: idpath.Self, Files: []*ast.File{mainFile}})

	resolver := Resolver{"helper": []idpath.Path{idpath.New("nonexistent")}}
	lk := Lookup{Global: global, ModulePath: idpath.Self, Module: mustGetModule(t, global, idpath.Self), Imports: resolver}

	candidates := ResolveSymbol(lk, ast.Name{Segments: []ast.Ident{{Name: "helper"}}}, scope.New())
	assert.Empty(t, candidates)
}

func mustGetModule(t *testing.T, global *modindex.Global, p idpath.Path) *modindex.Module {
	t.Helper()
	mod, ok := global.Get(p)
	require.True(t, ok)
	return mod
}
