package ast

// Decl is the sum type of top-level module items the symbol finder
// (§4.4) and compiler (§4.5.1) dispatch on.
type Decl interface {
	isDecl()
	Span() Span
	DeclName() string
}

// Param is one formal parameter of a FuncDecl.
type Param struct {
	Name Ident
	Type *TypeAnn // nil when unannotated
}

// FuncDecl is "fn name(p1: T1, ...): RetType = body". RetType is nil when
// the declaration omits a return-type annotation; spec.md §4.5.2 requires
// one for any function reached recursively.
type FuncDecl struct {
	Name    Ident
	Params  []Param
	RetType *TypeAnn
	Body    Expr
	span    Span
}

func NewFuncDecl(name Ident, params []Param, retType *TypeAnn, body Expr, span Span) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, RetType: retType, Body: body, span: span}
}
func (d *FuncDecl) isDecl()          {}
func (d *FuncDecl) Span() Span       { return d.span }
func (d *FuncDecl) DeclName() string { return d.Name.Name }

// LetDecl is a top-level "let name = value" global binding.
type LetDecl struct {
	Name  Ident
	Value Expr
	span  Span
}

func NewLetDecl(name Ident, value Expr, span Span) *LetDecl {
	return &LetDecl{Name: name, Value: value, span: span}
}
func (d *LetDecl) isDecl()          {}
func (d *LetDecl) Span() Span       { return d.span }
func (d *LetDecl) DeclName() string { return d.Name.Name }

// FieldDecl is one field of a struct TypeDecl; its name also produces a
// Method(type-index, field-index) symbol-finder candidate (§4.4), an
// accessor callable the compiler does not yet lower (§4.5.1).
type FieldDecl struct {
	Name Ident
	Type *TypeAnn
}

// VariantDecl is one variant of an enum TypeDecl; its name produces a
// Method candidate standing in for a constructor callable.
type VariantDecl struct {
	Name    Ident
	Payload *TypeAnn // nil for a unit variant
}

// TypeDecl is "type Name = { field: T, ... }" (struct, len(Fields) > 0)
// or "type Name = A | B(T) | C" (enum, len(Variants) > 0). The two are
// mutually exclusive.
type TypeDecl struct {
	Name     Ident
	Fields   []FieldDecl
	Variants []VariantDecl
	span     Span
}

func NewStructDecl(name Ident, fields []FieldDecl, span Span) *TypeDecl {
	return &TypeDecl{Name: name, Fields: fields, span: span}
}
func NewEnumDecl(name Ident, variants []VariantDecl, span Span) *TypeDecl {
	return &TypeDecl{Name: name, Variants: variants, span: span}
}
func (d *TypeDecl) isDecl()          {}
func (d *TypeDecl) Span() Span       { return d.span }
func (d *TypeDecl) DeclName() string { return d.Name.Name }

// BuiltinTypeDecl is "builtin type Name". The parser accepts it in any
// module; the built-in type linker only binds those in std-prefixed
// modules (§4.7).
type BuiltinTypeDecl struct {
	Name Ident
	span Span
}

func NewBuiltinTypeDecl(name Ident, span Span) *BuiltinTypeDecl {
	return &BuiltinTypeDecl{Name: name, span: span}
}
func (d *BuiltinTypeDecl) isDecl()          {}
func (d *BuiltinTypeDecl) Span() Span       { return d.span }
func (d *BuiltinTypeDecl) DeclName() string { return d.Name.Name }

// TestDecl is "test "name" = body"; the symbol finder always skips these
// (§4.4).
type TestDecl struct {
	Name string
	Body Expr
	span Span
}

func NewTestDecl(name string, body Expr, span Span) *TestDecl {
	return &TestDecl{Name: name, Body: body, span: span}
}
func (d *TestDecl) isDecl()          {}
func (d *TestDecl) Span() Span       { return d.span }
func (d *TestDecl) DeclName() string { return d.Name }
