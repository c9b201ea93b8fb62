package builtin

import (
	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/typestore"
)

// stdBase is the library basepath the linker scans under (§4.7: "modules
// whose IdPath begins with the std library basepath").
var stdBase = idpath.New("std")

// builtinFieldNames maps a BuiltinTypeDecl's literal declared name to the
// BuiltinTypeIds field it binds, by exact match per §4.7.
var builtinFieldNames = map[string]func(*typestore.BuiltinTypeIds, typestore.TypeId){
	"Bool":    func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Bool = id },
	"Int8":    func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Int8 = id },
	"Int16":   func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Int16 = id },
	"Int32":   func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Int32 = id },
	"Int":     func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Int = id },
	"Uint8":   func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Uint8 = id },
	"Uint16":  func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Uint16 = id },
	"Uint32":  func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Uint32 = id },
	"Uint":    func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Uint = id },
	"Float32": func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Float32 = id },
	"Float":   func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.Float = id },
	"String":  func(b *typestore.BuiltinTypeIds, id typestore.TypeId) { b.String = id },
}

// LinkBuiltinTypes scans global for std-prefixed modules, interns a Type
// descriptor for every BuiltinTypeDecl it finds, and binds the resulting
// TypeId onto store.Builtin by literal name match (§4.7).
func LinkBuiltinTypes(global *modindex.Global, store *typestore.Store) error {
	var linkErr error

	global.Iter(func(modulePath idpath.Path, mod *modindex.Module) {
		if linkErr != nil {
			return
		}
		if !modulePath.HasPrefix(stdBase) {
			return
		}

		for _, file := range mod.Files {
			for _, item := range file.Items {
				decl, ok := item.(*ast.BuiltinTypeDecl)
				if !ok {
					continue
				}

				bind, known := builtinFieldNames[decl.Name.Name]
				if !known {
					linkErr = diag.NewFatalError("unrecognized built-in type name: " + decl.Name.Name)
					return
				}

				id := store.Intern(typestore.Descriptor{
					Name:           decl.Name.Name,
					DefiningModule: modulePath,
				})
				bind(&store.Builtin, id)
			}
		}
	})

	return linkErr
}
