// Package typestore implements TypeId, the built-in type id table, and
// the interned type store (§3 "Type descriptor", §4.7).
package typestore

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/tidwall/btree"
)

// TypeId is an opaque numeric index into the Store.
type TypeId int

// BuiltinTypeIds are the fixed small TypeIds reserved for built-in types,
// bound by the built-in type linker (§4.7).
type BuiltinTypeIds struct {
	Bool    TypeId
	Int8    TypeId
	Int16   TypeId
	Int32   TypeId
	Int     TypeId
	Uint8   TypeId
	Uint16  TypeId
	Uint32  TypeId
	Uint    TypeId
	Float32 TypeId
	Float   TypeId
	String  TypeId
}

// AllDistinct reports whether every built-in TypeId is non-zero and no
// two coincide (spec.md §8's "Built-in TypeIds are pairwise distinct").
func (b BuiltinTypeIds) AllDistinct() bool {
	ids := []TypeId{b.Bool, b.Int8, b.Int16, b.Int32, b.Int, b.Uint8, b.Uint16, b.Uint32, b.Uint, b.Float32, b.Float, b.String}
	seen := make(map[TypeId]bool, len(ids))
	for _, id := range ids {
		if id == 0 {
			return false
		}
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// Field is one entry of a Descriptor's field layout.
type Field struct {
	Name   string
	Offset int
	Type   TypeId
}

// Descriptor is a concrete type: name, the module that declared it, its
// size, and its field layout. Built-ins have an empty field layout (§3).
type Descriptor struct {
	Name          string
	DefiningModule idpath.Path
	SizeInBytes   int
	Fields        []Field
}

// key renders a Descriptor's structural identity for interning, mirroring
// the "SSID of type declaration" uniqueness invariant from spec.md §3:
// same name + same defining module == the same declaration.
func (d Descriptor) key() string {
	return d.DefiningModule.String() + "#" + d.Name
}

// Store is the interned map from structural type keys to concrete type
// descriptors. Insertion order determines TypeId (spec.md §3's
// invariant): Intern hands out TypeIds from a counter starting at 1.
// The lookup tables are btree.Maps, as in the teacher's dep_graph
// package.
type Store struct {
	byKey   btree.Map[string, TypeId]
	byId    btree.Map[int, Descriptor]
	nextId  TypeId
	Builtin BuiltinTypeIds
}

func New() *Store {
	return &Store{nextId: 1}
}

// Intern inserts desc if its structural key is new, returning the
// existing TypeId otherwise. Two Descriptors compare equal (via
// google/go-cmp, the same library the teacher's type_system package
// uses for structural type comparisons) when their key and fields match.
func (s *Store) Intern(desc Descriptor) TypeId {
	key := desc.key()
	if id, ok := s.byKey.Get(key); ok {
		existing, _ := s.byId.Get(int(id))
		if !cmp.Equal(existing, desc) {
			// Same declaration key, different shape: a caller bug, not a
			// user-facing error — the symbol finder guarantees uniqueness.
			panic(fmt.Sprintf("typestore: conflicting descriptors for key %q", key))
		}
		return id
	}
	id := s.nextId
	s.nextId++
	s.byKey.Set(key, id)
	s.byId.Set(int(id), desc)
	return id
}

// Get returns the descriptor for id.
func (s *Store) Get(id TypeId) (Descriptor, bool) {
	return s.byId.Get(int(id))
}

// Name returns id's declared name, or "<unknown>" — used for diagnostics
// (§4.6: "TypeError carrying the name of the offending type").
func (s *Store) Name(id TypeId) string {
	if d, ok := s.Get(id); ok {
		return d.Name
	}
	return "<unknown>"
}

// IsNumeric reports whether id names one of the built-in numeric types.
func (s *Store) IsNumeric(id TypeId) bool {
	b := s.Builtin
	switch id {
	case b.Int8, b.Int16, b.Int32, b.Int, b.Uint8, b.Uint16, b.Uint32, b.Uint, b.Float32, b.Float:
		return true
	default:
		return false
	}
}
