package resolve

import (
	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/scope"
	"github.com/solarlang/solar/internal/symbol"
)

// Lookup bundles the current module, its IdPath, and its import resolver
// — everything the compiler needs to resolve a name (§4.5).
type Lookup struct {
	Global     *modindex.Global
	ModulePath idpath.Path
	Module     *modindex.Module
	Imports    Resolver
}

// CandidateKind tags a Candidate from ResolveSymbol.
type CandidateKind int

const (
	CandidateLocal CandidateKind = iota
	CandidateGlobal
)

// Candidate is one possible binding for a dotted name, as produced by
// the §4.5.5 algorithm. Overload narrowing (the caller's job, §4.5.3) is
// applied to a slice of these.
type Candidate struct {
	Kind  CandidateKind
	Local scope.Binding // valid when Kind == CandidateLocal
	Sym   symbol.Id     // valid when Kind == CandidateGlobal
}

// ResolveSymbol implements §4.5.5: given a dotted path, the current
// Lookup and Scope, return every candidate binding. Local scope shadows
// everything when the path is a single segment in scope.
func ResolveSymbol(lk Lookup, path ast.Name, sc *scope.Scope) []Candidate {
	segs := path.Segments

	if len(segs) == 1 {
		if binding, ok := sc.Get(segs[0].Name); ok {
			return []Candidate{{Kind: CandidateLocal, Local: binding}}
		}
	}

	var candidates []Candidate

	if len(segs) == 1 {
		name := segs[0].Name
		for _, id := range FindSymbol(lk.Module, lk.ModulePath, name) {
			candidates = append(candidates, Candidate{Kind: CandidateGlobal, Sym: id})
		}
	}

	first := segs[0].Name
	for _, importBase := range lk.Imports[first] {
		rest := make([]string, 0, len(segs)-1)
		for _, s := range segs[1:] {
			rest = append(rest, s.Name)
		}
		var modulePath idpath.Path
		var symbolName string
		if len(rest) == 0 {
			// "use a.b.(x,y)" registers x/y keyed to module a.b; a bare
			// reference to "x" here has no further segments to strip.
			modulePath = importBase
			symbolName = first
		} else {
			modulePath = importBase.Append(rest[:len(rest)-1]...)
			symbolName = rest[len(rest)-1]
		}

		mod, ok := lk.Global.Get(modulePath)
		if !ok {
			continue // fail-soft: skip if absent (§4.5.5 step 3)
		}
		for _, id := range FindSymbol(mod, modulePath, symbolName) {
			candidates = append(candidates, Candidate{Kind: CandidateGlobal, Sym: id})
		}
	}

	return candidates
}
