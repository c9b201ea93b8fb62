package ast

// SelectionKind tags an import's ImportDecl.Selection variant (§4.3).
type SelectionKind int

const (
	// SelectionThis: "use a.b.x" — the last path segment is the symbol,
	// the remaining path is the module.
	SelectionThis SelectionKind = iota
	// SelectionItems: "use a.b.(x, y)" — the path is the module, each
	// name in Items becomes a resolver key.
	SelectionItems
	// SelectionAll: "use a.b.*" — reserved; must enumerate public
	// symbols of the module. Not yet specified; resolving one is a
	// fatal error (§4.3).
	SelectionAll
)

// ImportDecl is one "use ..." declaration.
type ImportDecl struct {
	Path      Name // the raw dotted path as written, before library/project qualification
	Selection SelectionKind
	Items     []Ident // populated for SelectionItems
	span      Span
}

func NewImportThis(path Name, span Span) *ImportDecl {
	return &ImportDecl{Path: path, Selection: SelectionThis, span: span}
}
func NewImportItems(path Name, items []Ident, span Span) *ImportDecl {
	return &ImportDecl{Path: path, Selection: SelectionItems, Items: items, span: span}
}
func NewImportAll(path Name, span Span) *ImportDecl {
	return &ImportDecl{Path: path, Selection: SelectionAll, span: span}
}
func (i *ImportDecl) Span() Span { return i.span }
