package resolve

import (
	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/symbol"
)

// FindSymbol scans every file in module for items matching name,
// file-order then item-order (§4.4). Tests are always skipped.
func FindSymbol(mod *modindex.Module, modulePath idpath.Path, name string) []symbol.Id {
	var matches []symbol.Id

	for fileIdx, file := range mod.Files {
		for itemIdx, item := range file.Items {
			switch d := item.(type) {
			case *ast.FuncDecl:
				if d.Name.Name == name {
					matches = append(matches, symbol.New(modulePath, uint16(fileIdx), symbol.Func(itemIdx)))
				}
			case *ast.TypeDecl:
				if d.Name.Name == name {
					matches = append(matches, symbol.New(modulePath, uint16(fileIdx), symbol.Type(itemIdx)))
				}
				for fieldIdx, field := range d.Fields {
					if field.Name.Name == name {
						matches = append(matches, symbol.New(modulePath, uint16(fileIdx), symbol.Method(itemIdx, fieldIdx)))
					}
				}
				for variantIdx, variant := range d.Variants {
					if variant.Name.Name == name {
						matches = append(matches, symbol.New(modulePath, uint16(fileIdx), symbol.Method(itemIdx, variantIdx)))
					}
				}
			case *ast.LetDecl:
				if d.Name.Name == name {
					matches = append(matches, symbol.New(modulePath, uint16(fileIdx), symbol.GlobalVar(itemIdx)))
				}
			case *ast.TestDecl:
				// skipped, per §4.4
			}
		}
	}

	return matches
}

// Item looks up the AST Decl a SymbolId names. Returns false if the
// module or file index is out of range (a caller bug, since every
// SymbolId is produced by FindSymbol against a live Global).
func Item(global *modindex.Global, id symbol.Id) (ast.Decl, bool) {
	mod, ok := global.Get(id.Module)
	if !ok {
		return nil, false
	}
	if int(id.File) >= len(mod.Files) {
		return nil, false
	}
	file := mod.Files[id.File]
	if id.Item.Index >= len(file.Items) {
		return nil, false
	}
	return file.Items[id.Item.Index], true
}
