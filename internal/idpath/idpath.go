// Package idpath implements IdPath, the stable absolute-name model used to
// identify projects, libraries and modules throughout the compiler.
package idpath

import "strings"

// Path is an ordered sequence of identifier segments: the root absolute
// name of a module or library version. Project libraries use segments
// shaped "name(publisher)", "version"; the target project uses the
// literal segment "self".
type Path struct {
	segments []string
}

// Self is the basepath of the project currently being compiled.
var Self = New("self")

// New builds a Path from its segments.
func New(segments ...string) Path {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Path{segments: cp}
}

// Append returns a new Path with extra segments appended.
func (p Path) Append(segments ...string) Path {
	out := make([]string, 0, len(p.segments)+len(segments))
	out = append(out, p.segments...)
	out = append(out, segments...)
	return Path{segments: out}
}

// Segments returns the underlying segment slice. Callers must not mutate it.
func (p Path) Segments() []string {
	return p.segments
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// HasPrefix reports whether prefix's segments are a prefix of p's segments.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	for i, seg := range prefix.segments {
		if p.segments[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, seg := range p.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// String renders the path joined by '/', suitable as an ordered-map key
// (btree.Map needs a Less-comparable key; strings sort lexically, which
// is good enough since paths are only ever compared for equality or as
// opaque sort keys, never for semantic ordering).
func (p Path) String() string {
	return strings.Join(p.segments, "/")
}

// Dir returns everything but the last segment.
func (p Path) Dir() Path {
	if len(p.segments) == 0 {
		return p
	}
	return Path{segments: p.segments[:len(p.segments)-1]}
}

// Last returns the final segment, or "" if empty.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}
