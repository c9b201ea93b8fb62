package ast

// Lit is the sum type of literal forms the lexer can produce.
type Lit interface {
	isLit()
	Span() Span
}

type IntLit struct {
	Digits string // unprocessed digit text, in Radix
	Radix  int
	Suffix string // "", "i8", "i16", "i32", "i", "u8", "u16", "u32", "u"
	span   Span
}

func NewIntLit(digits string, radix int, suffix string, span Span) *IntLit {
	return &IntLit{Digits: digits, Radix: radix, Suffix: suffix, span: span}
}
func (l *IntLit) isLit()      {}
func (l *IntLit) Span() Span { return l.span }

type FloatLit struct {
	Text string
	span Span
}

func NewFloatLit(text string, span Span) *FloatLit {
	return &FloatLit{Text: text, span: span}
}
func (l *FloatLit) isLit()      {}
func (l *FloatLit) Span() Span { return l.span }

type BoolLit struct {
	Value bool
	span  Span
}

func NewBoolLit(value bool, span Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}
func (l *BoolLit) isLit()      {}
func (l *BoolLit) Span() Span { return l.span }

// StringPart is either a literal text chunk or an interpolated expression,
// letting string interpolation desugar to a concatenation call (§4.5.3).
type StringPart struct {
	Text string // valid only when Expr == nil
	Expr Expr
}

type StringLit struct {
	Parts []StringPart
	span  Span
}

func NewStringLit(parts []StringPart, span Span) *StringLit {
	return &StringLit{Parts: parts, span: span}
}
func (l *StringLit) isLit()      {}
func (l *StringLit) Span() Span { return l.span }

// IsPlain reports whether the string literal has no interpolated parts.
func (l *StringLit) IsPlain() bool {
	for _, p := range l.Parts {
		if p.Expr != nil {
			return false
		}
	}
	return true
}

// PlainText concatenates a plain (non-interpolated) string literal's text.
func (l *StringLit) PlainText() string {
	var out string
	for _, p := range l.Parts {
		out += p.Text
	}
	return out
}
