// Package resolve implements the per-file import resolver (§4.3), the
// in-module symbol finder (§4.4), and the scope→module→imports symbol
// resolution algorithm (§4.5.5).
package resolve

import (
	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/project"
)

// Resolver is the per-file mapping from a short name to one or more
// absolute module IdPaths. Multiple imports may bring the same short
// name from different modules; overload resolution disambiguates at
// call sites (§4.3).
type Resolver map[string][]idpath.Path

func (r Resolver) add(name string, module idpath.Path) {
	r[name] = append(r[name], module)
}

// selfSegment is the literal first segment marking a project-relative
// import ("use self.mymodule.foo"). Resolving "is this import
// library-qualified or project-relative" needs a syntactic marker;
// spec.md §3 already reserves "self" as the target project's literal
// basepath segment, so an import is project-relative exactly when it
// starts there, and library-qualified otherwise (DESIGN.md "import
// qualification").
const selfSegment = "self"

// ResolveImports builds a file's Resolver from its import declarations.
func ResolveImports(file *ast.File, proj *project.Project) (Resolver, error) {
	resolver := make(Resolver)

	for _, imp := range file.Imports {
		segs := imp.Path.Segments
		first := segs[0].Name

		var qualified idpath.Path
		if first == selfSegment {
			rest := make([]string, 0, len(segs)-1)
			for _, s := range segs[1:] {
				rest = append(rest, s.Name)
			}
			qualified = proj.Basepath.Append(rest...)
		} else {
			libPath, ok := proj.DepMap[first]
			if !ok {
				return nil, diag.NewLibNotInDepsError(first, imp.Span())
			}
			rest := make([]string, 0, len(segs)-1)
			for _, s := range segs[1:] {
				rest = append(rest, s.Name)
			}
			qualified = libPath.Append(rest...)
		}

		switch imp.Selection {
		case ast.SelectionThis:
			module := qualified.Dir()
			symbol := qualified.Last()
			resolver.add(symbol, module)
		case ast.SelectionItems:
			for _, item := range imp.Items {
				resolver.add(item.Name, qualified)
			}
		case ast.SelectionAll:
			return nil, diag.NewUnimplementedError("import selection 'All' (must enumerate public symbols)", imp.Span())
		}
	}

	return resolver, nil
}
