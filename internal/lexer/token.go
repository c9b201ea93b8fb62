// Package lexer tokenizes .sol source text, in the same rune-scanning,
// span-tracking style as the teacher's parser/lexer.go.
package lexer

import "github.com/solarlang/solar/internal/ast"

type Kind int

const (
	EOF Kind = iota
	Ident
	Number // raw numeric text; the parser splits digits/radix/suffix
	String // raw text between quotes, escapes/interpolation unprocessed
	KwFn
	KwLet
	KwIn
	KwUse
	KwType
	KwTest
	KwBuiltin
	KwIf
	KwThen
	KwElse
	KwTrue
	KwFalse
	LParen
	RParen
	LBrace
	RBrace
	Comma
	Colon
	Equals
	Pipe
	Dot
	Star
	Plus
	Minus
	Slash
	Lt
	Le
	Gt
	Ge
	EqEq
)

var keywords = map[string]Kind{
	"fn":      KwFn,
	"let":     KwLet,
	"in":      KwIn,
	"use":     KwUse,
	"type":    KwType,
	"test":    KwTest,
	"builtin": KwBuiltin,
	"if":      KwIf,
	"then":    KwThen,
	"else":    KwElse,
	"true":    KwTrue,
	"false":   KwFalse,
}

// Token is one scanned lexical unit: its kind, raw text, and source span.
type Token struct {
	Kind Kind
	Text string
	Span ast.Span
}

func (t Token) String() string {
	return t.Text
}
