package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/solarlang/solar/internal/ast"
	"golang.org/x/text/unicode/norm"
)

// Lexer scans .sol source text into a flat token stream. Adapted from the
// teacher's rune-at-a-time scanning style (parser/lexer.go), generalized
// to this language's keyword set and punctuation.
type Lexer struct {
	source   *ast.Source
	offset   int
	loc      ast.Location
}

func New(source *ast.Source) *Lexer {
	return &Lexer{source: source, loc: ast.Location{Line: 1, Column: 1}}
}

// isIdentStart and isIdentContinue follow UAX-31, same rule set as the
// teacher's internal/lexer_util, minus '$' (reserved here for string
// interpolation markers instead of identifier characters).
func isIdentStart(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentContinue(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (l *Lexer) peekRune() (rune, int) {
	if l.offset >= len(l.source.Contents) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.source.Contents[l.offset:])
}

func (l *Lexer) advance(width int, r rune) {
	l.offset += width
	if r == '\n' {
		l.loc.Line++
		l.loc.Column = 1
	} else {
		l.loc.Column++
	}
}

func (l *Lexer) skipTrivia() {
	for {
		r, w := l.peekRune()
		if w == 0 {
			return
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			l.advance(w, r)
			continue
		}
		if r == '#' {
			for {
				r, w := l.peekRune()
				if w == 0 || r == '\n' {
					break
				}
				l.advance(w, r)
			}
			continue
		}
		return
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() Token {
	l.skipTrivia()
	start := l.loc
	r, w := l.peekRune()
	if w == 0 {
		return Token{Kind: EOF, Span: l.span(start)}
	}

	switch {
	case isIdentStart(r):
		return l.scanIdent(start)
	case isDigit(r):
		return l.scanNumber(start)
	case r == '"':
		return l.scanString(start)
	}

	single := func(k Kind) Token {
		l.advance(w, r)
		return Token{Kind: k, Text: string(r), Span: l.span(start)}
	}

	switch r {
	case '(':
		return single(LParen)
	case ')':
		return single(RParen)
	case '{':
		return single(LBrace)
	case '}':
		return single(RBrace)
	case ',':
		return single(Comma)
	case ':':
		return single(Colon)
	case '|':
		return single(Pipe)
	case '.':
		return single(Dot)
	case '*':
		return single(Star)
	case '+':
		return single(Plus)
	case '-':
		return single(Minus)
	case '/':
		return single(Slash)
	case '=':
		l.advance(w, r)
		if r2, w2 := l.peekRune(); r2 == '=' {
			l.advance(w2, r2)
			return Token{Kind: EqEq, Text: "==", Span: l.span(start)}
		}
		return Token{Kind: Equals, Text: "=", Span: l.span(start)}
	case '<':
		l.advance(w, r)
		if r2, w2 := l.peekRune(); r2 == '=' {
			l.advance(w2, r2)
			return Token{Kind: Le, Text: "<=", Span: l.span(start)}
		}
		return Token{Kind: Lt, Text: "<", Span: l.span(start)}
	case '>':
		l.advance(w, r)
		if r2, w2 := l.peekRune(); r2 == '=' {
			l.advance(w2, r2)
			return Token{Kind: Ge, Text: ">=", Span: l.span(start)}
		}
		return Token{Kind: Gt, Text: ">", Span: l.span(start)}
	}

	l.advance(w, r)
	return Token{Kind: EOF, Text: string(r), Span: l.span(start)}
}

func (l *Lexer) span(start ast.Location) ast.Span {
	return ast.Span{Start: start, End: l.loc, SourceID: l.source.ID}
}

func (l *Lexer) scanIdent(start ast.Location) Token {
	var b strings.Builder
	for {
		r, w := l.peekRune()
		if w == 0 || !isIdentContinue(r) {
			break
		}
		b.WriteRune(r)
		l.advance(w, r)
	}
	text := b.String()
	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text, Span: l.span(start)}
	}
	return Token{Kind: Ident, Text: text, Span: l.span(start)}
}

// scanNumber scans digits, an optional '.', and any trailing identifier
// characters in one pass: this covers radix prefixes ("0x1F"), decimal
// points, and width suffixes ("i32", "u8") without knowing the grammar
// of any of them yet. The parser splits this raw text into
// digits/radix/suffix (ast.IntLit) or treats it as a float (ast.FloatLit).
func (l *Lexer) scanNumber(start ast.Location) Token {
	var b strings.Builder
	for {
		r, w := l.peekRune()
		if w == 0 {
			break
		}
		if isDigit(r) || r == '.' || isIdentContinue(r) {
			b.WriteRune(r)
			l.advance(w, r)
			continue
		}
		break
	}
	return Token{Kind: Number, Text: b.String(), Span: l.span(start)}
}

func (l *Lexer) scanString(start ast.Location) Token {
	// consume opening quote
	_, w := l.peekRune()
	l.advance(w, '"')

	var b strings.Builder
	for {
		r, w := l.peekRune()
		if w == 0 {
			break // unterminated; parser reports via Parse error on EOF
		}
		if r == '"' {
			l.advance(w, r)
			break
		}
		if r == '\\' {
			b.WriteRune(r)
			l.advance(w, r)
			if r2, w2 := l.peekRune(); w2 != 0 {
				b.WriteRune(r2)
				l.advance(w2, r2)
			}
			continue
		}
		b.WriteRune(r)
		l.advance(w, r)
	}

	// Normalize to NFC so two textually different but canonically equal
	// string literals intern to the same mir.Value constant.
	text := norm.NFC.String(b.String())
	return Token{Kind: String, Text: text, Span: l.span(start)}
}

// Lex drains the lexer into a token slice; the parser works over this
// slice.
func (l *Lexer) Lex() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens
}
