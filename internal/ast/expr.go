package ast

// Expr is the sum type of expression forms the compiler recurses over
// (§4.5.3–§4.5.4).
type Expr interface {
	isExpr()
	Span() Span
}

// LitExpr wraps a literal value in expression position.
type LitExpr struct {
	Lit  Lit
	span Span
}

func NewLitExpr(lit Lit, span Span) *LitExpr { return &LitExpr{Lit: lit, span: span} }
func (e *LitExpr) isExpr()                   {}
func (e *LitExpr) Span() Span                { return e.span }

// IdentExpr is a (possibly dotted) identifier in value position.
type IdentExpr struct {
	Path Name
	span Span
}

// Name aliases DottedName to avoid stutter at call sites (ast.Name vs
// ast.DottedName).
type Name = DottedName

func NewIdentExpr(path Name, span Span) *IdentExpr { return &IdentExpr{Path: path, span: span} }
func (e *IdentExpr) isExpr()                        {}
func (e *IdentExpr) Span() Span                     { return e.span }

// CallExpr is a juxtaposition call "f a b" or a desugared built-in /
// operator / string-interpolation call.
type CallExpr struct {
	Callee Name
	Args   []Expr
	span   Span
}

func NewCallExpr(callee Name, args []Expr, span Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}
func (e *CallExpr) isExpr()  {}
func (e *CallExpr) Span() Span { return e.span }

// LetBinding is one "name = value" clause of a LetInExpr, compiled left
// to right (§4.5.3).
type LetBinding struct {
	Name  Ident
	Value Expr
}

// LetInExpr is "let x1=e1, x2=e2, ... in body", lowered right-associatively
// to nested NewLocalVar MIR (§4.5.3).
type LetInExpr struct {
	Bindings []LetBinding
	Body     Expr
	span     Span
}

func NewLetInExpr(bindings []LetBinding, body Expr, span Span) *LetInExpr {
	return &LetInExpr{Bindings: bindings, Body: body, span: span}
}
func (e *LetInExpr) isExpr()  {}
func (e *LetInExpr) Span() Span { return e.span }

// IfExpr is "if cond then t else f" (§B of SPEC_FULL, completing the
// MIR's reserved IfExpr instruction).
type IfExpr struct {
	Cond, Then, Else Expr
	span             Span
}

func NewIfExpr(cond, then, els Expr, span Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: span}
}
func (e *IfExpr) isExpr()  {}
func (e *IfExpr) Span() Span { return e.span }

// TupleExpr is a parenthesized expression list. Arity 1 is transparent
// parenthesization (§4.5.4); arity > 1 is parsed but rejected by the
// compiler as unimplemented, per spec.md.
type TupleExpr struct {
	Elems []Expr
	span  Span
}

func NewTupleExpr(elems []Expr, span Span) *TupleExpr { return &TupleExpr{Elems: elems, span: span} }
func (e *TupleExpr) isExpr()                           {}
func (e *TupleExpr) Span() Span                        { return e.span }
