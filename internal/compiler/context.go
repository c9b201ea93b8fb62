// Package compiler is the recursive type-directed MIR builder (§4.5):
// a pure function over (Context, AST node, Lookup, Scope) yielding a
// StaticExpression, backed by the memoizing function store that makes
// monomorphization and recursion safe.
package compiler

import (
	"github.com/solarlang/solar/internal/funcstore"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/project"
	"github.com/solarlang/solar/internal/resolve"
	"github.com/solarlang/solar/internal/typestore"
)

// Context is CompilerContext (§4.5): everything shared across the whole
// compilation run, independent of which symbol is currently compiling.
type Context struct {
	Projects *project.Info
	Global   *modindex.Global
	Types    *typestore.Store
	Funcs    *funcstore.Store

	// imports caches each file's resolved import table, keyed by its
	// module's IdPath string plus its file index, so ResolveImports runs
	// once per file rather than once per call site that references it.
	imports map[string]resolve.Resolver
}

func NewContext(projects *project.Info, global *modindex.Global, types *typestore.Store, funcs *funcstore.Store) *Context {
	return &Context{
		Projects: projects,
		Global:   global,
		Types:    types,
		Funcs:    funcs,
		imports:  make(map[string]resolve.Resolver),
	}
}
