package ast

// TypeAnn is a surface-syntax type annotation, resolved to a TypeId by
// the compiler (built-ins are resolved via typestore.BuiltinTypeIds;
// user types are not yet resolvable beyond their declaration, per
// spec.md §4.5.1's "TypeDecl... unimplemented" note).
type TypeAnn struct {
	Name Name
	span Span
}

func NewTypeAnn(name Name, span Span) *TypeAnn { return &TypeAnn{Name: name, span: span} }
func (t *TypeAnn) Span() Span                   { return t.span }
