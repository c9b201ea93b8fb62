package lexer

import (
	"testing"

	"github.com/solarlang/solar/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(src string) []Token {
	l := New(&ast.Source{ID: 0, Path: "fixture.sol", Contents: src})
	return l.Lex()
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndIdents(t *testing.T) {
	tokens := lexAll("fn main let in if then else")
	assert.Equal(t, []Kind{KwFn, Ident, KwLet, KwIn, KwIf, KwThen, KwElse, EOF}, kinds(tokens))
}

func TestLexNumberAndPunctuation(t *testing.T) {
	tokens := lexAll("(1, 2.5)")
	assert.Equal(t, []Kind{LParen, Number, Comma, Number, RParen, EOF}, kinds(tokens))
	require.Len(t, tokens, 6)
	assert.Equal(t, "2.5", tokens[3].Text)
}

func TestLexStringLiteral(t *testing.T) {
	tokens := lexAll(`"hello\n"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, String, tokens[0].Kind)
	assert.Equal(t, `hello\n`, tokens[0].Text)
}

func TestLexTwoCharOperators(t *testing.T) {
	tokens := lexAll("<= >= == < > =")
	assert.Equal(t, []Kind{Le, Ge, EqEq, Lt, Gt, Equals, EOF}, kinds(tokens))
}

func TestLexSkipsComments(t *testing.T) {
	tokens := lexAll("# a whole comment\nfn")
	assert.Equal(t, []Kind{KwFn, EOF}, kinds(tokens))
}

func TestLexSpanTracksLineAndColumn(t *testing.T) {
	tokens := lexAll("fn\nmain")
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].Span.Start.Line)
	assert.Equal(t, 2, tokens[1].Span.Start.Line)
	assert.Equal(t, 1, tokens[1].Span.Start.Column)
}
