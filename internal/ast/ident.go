package ast

import "strings"

// Ident is a single identifier segment together with its source span.
type Ident struct {
	Name string
	Span Span
}

// DottedName is a dotted path such as "a.b.c", parsed left to right. A
// single-segment DottedName is an ordinary identifier.
type DottedName struct {
	Segments []Ident
}

func (d DottedName) String() string {
	names := make([]string, len(d.Segments))
	for i, s := range d.Segments {
		names[i] = s.Name
	}
	return strings.Join(names, ".")
}

// Last returns the final segment's name.
func (d DottedName) Last() string {
	if len(d.Segments) == 0 {
		return ""
	}
	return d.Segments[len(d.Segments)-1].Name
}

// Head returns everything but the last segment.
func (d DottedName) Head() []Ident {
	if len(d.Segments) == 0 {
		return nil
	}
	return d.Segments[:len(d.Segments)-1]
}

func (d DottedName) Span() Span {
	if len(d.Segments) == 0 {
		return NoSpan
	}
	return Span{Start: d.Segments[0].Span.Start, End: d.Segments[len(d.Segments)-1].Span.End, SourceID: d.Segments[0].Span.SourceID}
}
