package ast

import "fmt"

// Location is a line/column position within a source file.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span is a half-open range within a single source file, identified by
// SourceID so diagnostics can find the right FileInfo.
type Span struct {
	Start    Location
	End      Location
	SourceID int
}

var NoSpan = Span{SourceID: -1}
