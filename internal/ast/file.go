package ast

// File is the parsed contents of a single .sol file: its import
// declarations and its body items, in source order (the order the
// symbol finder scans, §4.4).
type File struct {
	Source  *Source
	Imports []*ImportDecl
	Items   []Decl
}
