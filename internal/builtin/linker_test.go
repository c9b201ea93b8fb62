package builtin

import (
	"testing"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/typestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkBuiltinTypesBindsKnownNames(t *testing.T) {
	global, store := buildStdFixture(t, "Int", "String")

	err := LinkBuiltinTypes(global, store)
	require.NoError(t, err)
	assert.NotZero(t, store.Builtin.Int)
	assert.NotZero(t, store.Builtin.String)
	assert.True(t, store.Builtin.Int != store.Builtin.String)
}

func TestLinkBuiltinTypesRejectsUnknownName(t *testing.T) {
	global, store := buildStdFixture(t, "NotARealBuiltin")

	err := LinkBuiltinTypes(global, store)
	assert.Error(t, err)
}

func buildStdFixture(t *testing.T, names ...string) (*modindex.Global, *typestore.Store) {
	t.Helper()
	// modindex.Global is normally populated via its unexported
	// getOrCreate, which is only reachable through BuildAll; this fixture
	// instead starts from the project-free Global that NewForTest returns
	// and installs a hand-built Module with PutForTest, so the linker runs
	// over the same exported Iter the real pipeline relies on.
	global := modindex.NewForTest()
	modulePath := idpath.New("std", "core")

	var items []ast.Decl
	for _, name := range names {
		items = append(items, ast.NewBuiltinTypeDecl(ast.Ident{Name: name}, ast.NoSpan))
	}
	file := &ast.File{Items: items}
	global.PutForTest(modulePath, &modindex.Module{ProjectId: idpath.New("std"), Files: []*ast.File{file}})

	return global, typestore.New()
}
