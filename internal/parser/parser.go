// Package parser is a compact recursive-descent parser turning .sol
// source text into an ast.File. It exists to restore the concrete syntax
// spec.md treats as an out-of-scope external collaborator (SPEC_FULL.md
// §C) so the compiler has something real to recurse over, in the
// teacher's parser idiom: a Parser holding a flat token buffer and a
// cursor, collecting *Error values instead of panicking.
package parser

import (
	"strings"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/lexer"
)

type Parser struct {
	source *ast.Source
	toks   []lexer.Token
	pos    int
	errors []*Error
}

func New(source *ast.Source) *Parser {
	l := lexer.New(source)
	return &Parser{source: source, toks: l.Lex()}
}

func (p *Parser) peek() lexer.Token  { return p.toks[p.pos] }
func (p *Parser) peekKind() lexer.Kind { return p.toks[p.pos].Kind }

func (p *Parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k lexer.Kind) bool { return p.peekKind() == k }

func (p *Parser) expect(k lexer.Kind, what string) lexer.Token {
	if p.peekKind() != k {
		tok := p.peek()
		p.errors = append(p.errors, newError(tok.Span, "expected %s, found %q", what, tok.Text))
		return tok
	}
	return p.next()
}

// ParseFile parses a whole source file: zero or more imports, then zero
// or more top-level items.
func (p *Parser) ParseFile() (*ast.File, []*Error) {
	file := &ast.File{Source: p.source}

	for p.at(lexer.KwUse) {
		if imp := p.parseImport(); imp != nil {
			file.Imports = append(file.Imports, imp)
		}
	}

	for !p.at(lexer.EOF) {
		before := p.pos
		decl := p.parseItem()
		if decl != nil {
			file.Items = append(file.Items, decl)
		}
		if p.pos == before {
			// parseItem made no progress; avoid an infinite loop on
			// unrecognized input by skipping the offending token.
			tok := p.next()
			p.errors = append(p.errors, newError(tok.Span, "unexpected token %q", tok.Text))
		}
	}

	return file, p.errors
}

func (p *Parser) parseDottedName() ast.Name {
	var segs []ast.Ident
	tok := p.expect(lexer.Ident, "identifier")
	segs = append(segs, ast.Ident{Name: tok.Text, Span: tok.Span})
	for p.at(lexer.Dot) {
		p.next()
		if p.at(lexer.Star) {
			// "a.b.*" is only legal in import position; handled by the caller.
			break
		}
		idTok := p.expect(lexer.Ident, "identifier")
		segs = append(segs, ast.Ident{Name: idTok.Text, Span: idTok.Span})
	}
	return ast.Name{Segments: segs}
}

func (p *Parser) parseImport() *ast.ImportDecl {
	start := p.peek().Span.Start
	p.next() // "use"

	var segs []ast.Ident
	tok := p.expect(lexer.Ident, "identifier")
	segs = append(segs, ast.Ident{Name: tok.Text, Span: tok.Span})
	for p.at(lexer.Dot) {
		p.next()
		if p.at(lexer.Star) {
			p.next()
			return ast.NewImportAll(ast.Name{Segments: segs}, p.spanFrom(start))
		}
		if p.at(lexer.LParen) {
			p.next()
			var items []ast.Ident
			for {
				idTok := p.expect(lexer.Ident, "identifier")
				items = append(items, ast.Ident{Name: idTok.Text, Span: idTok.Span})
				if p.at(lexer.Comma) {
					p.next()
					continue
				}
				break
			}
			p.expect(lexer.RParen, "')'")
			return ast.NewImportItems(ast.Name{Segments: segs}, items, p.spanFrom(start))
		}
		idTok := p.expect(lexer.Ident, "identifier")
		segs = append(segs, ast.Ident{Name: idTok.Text, Span: idTok.Span})
	}
	return ast.NewImportThis(ast.Name{Segments: segs}, p.spanFrom(start))
}

func (p *Parser) spanFrom(start ast.Location) ast.Span {
	return ast.Span{Start: start, End: p.toks[p.pos].Span.Start, SourceID: p.source.ID}
}

func (p *Parser) parseItem() ast.Decl {
	switch p.peekKind() {
	case lexer.KwFn:
		return p.parseFuncDecl()
	case lexer.KwLet:
		return p.parseLetDecl()
	case lexer.KwType:
		return p.parseTypeDecl()
	case lexer.KwTest:
		return p.parseTestDecl()
	case lexer.KwBuiltin:
		return p.parseBuiltinTypeDecl()
	default:
		return nil
	}
}

func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	start := p.peek().Span.Start
	p.next() // "fn"
	nameTok := p.expect(lexer.Ident, "function name")
	name := ast.Ident{Name: nameTok.Text, Span: nameTok.Span}

	var params []ast.Param
	p.expect(lexer.LParen, "'('")
	for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
		pNameTok := p.expect(lexer.Ident, "parameter name")
		param := ast.Param{Name: ast.Ident{Name: pNameTok.Text, Span: pNameTok.Span}}
		if p.at(lexer.Colon) {
			p.next()
			param.Type = p.parseTypeAnn()
		}
		params = append(params, param)
		if p.at(lexer.Comma) {
			p.next()
			continue
		}
		break
	}
	p.expect(lexer.RParen, "')'")

	retType := p.parseOptionalRetType()

	p.expect(lexer.Equals, "'='")
	body := p.parseExpr()

	return ast.NewFuncDecl(name, params, retType, body, p.spanFrom(start))
}

// parseOptionalRetType: a missing ": RetType" is not a parse error, only
// a fact the compiler may later reject with RecursionWithoutReturnType.
func (p *Parser) parseOptionalRetType() *ast.TypeAnn {
	if !p.at(lexer.Colon) {
		return nil
	}
	p.next()
	return p.parseTypeAnn()
}

func (p *Parser) parseTypeAnn() *ast.TypeAnn {
	start := p.peek().Span
	name := p.parseDottedName()
	return ast.NewTypeAnn(name, ast.Span{Start: start.Start, End: p.toks[p.pos].Span.Start, SourceID: p.source.ID})
}

func (p *Parser) parseLetDecl() *ast.LetDecl {
	start := p.peek().Span.Start
	p.next() // "let"
	nameTok := p.expect(lexer.Ident, "let name")
	name := ast.Ident{Name: nameTok.Text, Span: nameTok.Span}
	p.expect(lexer.Equals, "'='")
	value := p.parseExpr()
	return ast.NewLetDecl(name, value, p.spanFrom(start))
}

func (p *Parser) parseTestDecl() *ast.TestDecl {
	start := p.peek().Span.Start
	p.next() // "test"
	nameTok := p.expect(lexer.String, "test name string")
	p.expect(lexer.Equals, "'='")
	body := p.parseExpr()
	return ast.NewTestDecl(nameTok.Text, body, p.spanFrom(start))
}

func (p *Parser) parseBuiltinTypeDecl() *ast.BuiltinTypeDecl {
	start := p.peek().Span.Start
	p.next() // "builtin"
	p.expect(lexer.KwType, "'type'")
	nameTok := p.expect(lexer.Ident, "builtin type name")
	return ast.NewBuiltinTypeDecl(ast.Ident{Name: nameTok.Text, Span: nameTok.Span}, p.spanFrom(start))
}

func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	start := p.peek().Span.Start
	p.next() // "type"
	nameTok := p.expect(lexer.Ident, "type name")
	name := ast.Ident{Name: nameTok.Text, Span: nameTok.Span}
	p.expect(lexer.Equals, "'='")

	if p.at(lexer.LBrace) {
		p.next()
		var fields []ast.FieldDecl
		for !p.at(lexer.RBrace) && !p.at(lexer.EOF) {
			fNameTok := p.expect(lexer.Ident, "field name")
			field := ast.FieldDecl{Name: ast.Ident{Name: fNameTok.Text, Span: fNameTok.Span}}
			p.expect(lexer.Colon, "':'")
			field.Type = p.parseTypeAnn()
			fields = append(fields, field)
			if p.at(lexer.Comma) {
				p.next()
				continue
			}
			break
		}
		p.expect(lexer.RBrace, "'}'")
		return ast.NewStructDecl(name, fields, p.spanFrom(start))
	}

	var variants []ast.VariantDecl
	for {
		vNameTok := p.expect(lexer.Ident, "variant name")
		variant := ast.VariantDecl{Name: ast.Ident{Name: vNameTok.Text, Span: vNameTok.Span}}
		if p.at(lexer.LParen) {
			p.next()
			variant.Payload = p.parseTypeAnn()
			p.expect(lexer.RParen, "')'")
		}
		variants = append(variants, variant)
		if p.at(lexer.Pipe) {
			p.next()
			continue
		}
		break
	}
	return ast.NewEnumDecl(name, variants, p.spanFrom(start))
}

// --- expressions ---

func (p *Parser) parseExpr() ast.Expr {
	return p.parseComparison()
}

var comparisonOps = map[lexer.Kind]string{
	lexer.Lt: "lt", lexer.Le: "le", lexer.Gt: "gt", lexer.Ge: "ge", lexer.EqEq: "eq",
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for {
		op, ok := comparisonOps[p.peekKind()]
		if !ok {
			return left
		}
		opTok := p.next()
		right := p.parseAdditive()
		left = p.desugarOperator(op, left, right, opTok.Span)
	}
}

var additiveOps = map[lexer.Kind]string{lexer.Plus: "add", lexer.Minus: "sub"}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for {
		op, ok := additiveOps[p.peekKind()]
		if !ok {
			return left
		}
		opTok := p.next()
		right := p.parseMultiplicative()
		left = p.desugarOperator(op, left, right, opTok.Span)
	}
}

var multiplicativeOps = map[lexer.Kind]string{lexer.Star: "mul", lexer.Slash: "div"}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseCallLevel()
	for {
		op, ok := multiplicativeOps[p.peekKind()]
		if !ok {
			return left
		}
		opTok := p.next()
		right := p.parseCallLevel()
		left = p.desugarOperator(op, left, right, opTok.Span)
	}
}

// desugarOperator lowers an infix operator to a call on a reserved
// buildin_<op> name, the same mechanism spec.md already specifies for
// string concatenation (SPEC_FULL.md §C/§D).
func (p *Parser) desugarOperator(op string, left, right ast.Expr, span ast.Span) ast.Expr {
	callee := ast.Name{Segments: []ast.Ident{{Name: "buildin_" + op, Span: span}}}
	return ast.NewCallExpr(callee, []ast.Expr{left, right}, span)
}

func (p *Parser) atomStart() bool {
	switch p.peekKind() {
	case lexer.Ident, lexer.Number, lexer.String, lexer.LParen, lexer.KwLet, lexer.KwIf, lexer.KwTrue, lexer.KwFalse:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCallLevel() ast.Expr {
	start := p.peek().Span.Start
	atom := p.parseAtom()

	ident, ok := atom.(*ast.IdentExpr)
	if !ok {
		return atom
	}

	var args []ast.Expr
	for p.atomStart() {
		args = append(args, p.parseAtom())
	}
	if len(args) == 0 {
		return atom
	}
	return ast.NewCallExpr(ident.Path, args, p.spanFrom(start))
}

func (p *Parser) parseAtom() ast.Expr {
	start := p.peek().Span
	switch p.peekKind() {
	case lexer.Number:
		return p.parseNumberLit()
	case lexer.String:
		return p.parseStringLit()
	case lexer.KwTrue:
		p.next()
		return ast.NewLitExpr(ast.NewBoolLit(true, start), start)
	case lexer.KwFalse:
		p.next()
		return ast.NewLitExpr(ast.NewBoolLit(false, start), start)
	case lexer.Ident:
		name := p.parseDottedName()
		return ast.NewIdentExpr(name, name.Span())
	case lexer.LParen:
		p.next()
		var elems []ast.Expr
		for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
			elems = append(elems, p.parseExpr())
			if p.at(lexer.Comma) {
				p.next()
				continue
			}
			break
		}
		p.expect(lexer.RParen, "')'")
		return ast.NewTupleExpr(elems, p.spanFrom(start.Start))
	case lexer.KwLet:
		return p.parseLetIn()
	case lexer.KwIf:
		return p.parseIf()
	default:
		tok := p.next()
		p.errors = append(p.errors, newError(tok.Span, "expected expression, found %q", tok.Text))
		return ast.NewLitExpr(ast.NewBoolLit(false, tok.Span), tok.Span)
	}
}

func (p *Parser) parseLetIn() ast.Expr {
	start := p.peek().Span.Start
	p.next() // "let"
	var bindings []ast.LetBinding
	for {
		nameTok := p.expect(lexer.Ident, "binding name")
		p.expect(lexer.Equals, "'='")
		value := p.parseExpr()
		bindings = append(bindings, ast.LetBinding{Name: ast.Ident{Name: nameTok.Text, Span: nameTok.Span}, Value: value})
		if p.at(lexer.Comma) {
			p.next()
			continue
		}
		break
	}
	p.expect(lexer.KwIn, "'in'")
	body := p.parseExpr()
	return ast.NewLetInExpr(bindings, body, p.spanFrom(start))
}

func (p *Parser) parseIf() ast.Expr {
	start := p.peek().Span.Start
	p.next() // "if"
	cond := p.parseExpr()
	p.expect(lexer.KwThen, "'then'")
	thenExpr := p.parseExpr()
	p.expect(lexer.KwElse, "'else'")
	elseExpr := p.parseExpr()
	return ast.NewIfExpr(cond, thenExpr, elseExpr, p.spanFrom(start))
}

// parseNumberLit splits the lexer's raw number text into digits/radix/
// suffix (spec.md §4.5.4: "Integer literal: parse digits ... in the
// literal's radix ... indicated by its type suffix").
func (p *Parser) parseNumberLit() ast.Expr {
	tok := p.next()
	text := tok.Text

	if strings.Contains(text, ".") {
		return ast.NewLitExpr(ast.NewFloatLit(text, tok.Span), tok.Span)
	}

	radix := 10
	digits := text
	switch {
	case strings.HasPrefix(text, "0x"):
		radix, digits = 16, text[2:]
	case strings.HasPrefix(text, "0o"):
		radix, digits = 8, text[2:]
	case strings.HasPrefix(text, "0b"):
		radix, digits = 2, text[2:]
	}

	suffix := ""
	for _, s := range []string{"i8", "i16", "i32", "i", "u8", "u16", "u32", "u"} {
		if strings.HasSuffix(digits, s) {
			suffix = s
			digits = digits[:len(digits)-len(s)]
			break
		}
	}

	return ast.NewLitExpr(ast.NewIntLit(digits, radix, suffix, tok.Span), tok.Span)
}

// parseStringLit processes escape sequences and splits "${expr}"
// interpolations out of the lexer's raw string text, desugaring a
// non-plain literal into a buildin_str_concat call per spec.md §4.5.3.
func (p *Parser) parseStringLit() ast.Expr {
	tok := p.next()
	parts := p.splitStringParts(tok.Text, tok.Span)
	lit := ast.NewStringLit(parts, tok.Span)
	if lit.IsPlain() {
		return ast.NewLitExpr(lit, tok.Span)
	}

	callee := ast.Name{Segments: []ast.Ident{{Name: "buildin_str_concat", Span: tok.Span}}}
	var args []ast.Expr
	for _, part := range lit.Parts {
		if part.Expr != nil {
			args = append(args, part.Expr)
			continue
		}
		args = append(args, ast.NewLitExpr(ast.NewStringLit([]ast.StringPart{{Text: part.Text}}, tok.Span), tok.Span))
	}
	return ast.NewCallExpr(callee, args, tok.Span)
}

func (p *Parser) splitStringParts(raw string, span ast.Span) []ast.StringPart {
	var parts []ast.StringPart
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			parts = append(parts, ast.StringPart{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(raw) {
		switch {
		case raw[i] == '\\' && i+1 < len(raw):
			plain.WriteByte(unescape(raw[i+1]))
			i += 2
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{':
			depth := 1
			j := i + 2
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth > 0 {
					j++
				}
			}
			flush()
			inner := &ast.Source{ID: span.SourceID, Path: "<interpolation>", Contents: raw[i+2 : j]}
			sub := &Parser{source: inner, toks: lexer.New(inner).Lex()}
			expr := sub.parseExpr()
			p.errors = append(p.errors, sub.errors...)
			parts = append(parts, ast.StringPart{Expr: expr})
			i = j + 1
		default:
			plain.WriteByte(raw[i])
			i++
		}
	}
	flush()
	return parts
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '"':
		return '"'
	case '\\':
		return '\\'
	default:
		return c
	}
}
