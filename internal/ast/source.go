package ast

// Source is a single loaded .sol file's text, kept alive for the full
// compilation because AST nodes below borrow substrings of Contents via
// Span, not copies.
type Source struct {
	ID       int
	Path     string
	Contents string
}
