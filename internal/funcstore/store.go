// Package funcstore implements the memoizing function store: the map
// from SSID to a compiled specialization, with the partial/complete
// reservation protocol that makes recursion safe (§4.5.2, §5).
package funcstore

import (
	"sync"

	"github.com/solarlang/solar/internal/mir"
	"github.com/solarlang/solar/internal/symbol"
	"github.com/solarlang/solar/internal/typestore"
	"github.com/tidwall/btree"
)

// RecordKind tags a Record: a reserved-but-in-flight slot, or a
// finished specialization.
type RecordKind int

const (
	Partial RecordKind = iota
	Complete
)

// Record is the function-store entry for one SSID. ArgTypes/Body/Return
// are only meaningful when Kind == Complete.
type Record struct {
	Kind       RecordKind
	Id         symbol.FunctionId
	ArgTypes   []typestore.TypeId
	Body       mir.StaticExpression
	ReturnType typestore.TypeId
}

// Store holds every compiled specialization, keyed by SSID. Reserve and
// Complete are the only writers; Lookup is the only reader below the
// compiler. This implementation compiles strictly single-threaded (one
// of the two sanctioned resolutions for the concurrency open question),
// but still guards every access with the reader-writer lock the
// protocol calls for, so the reservation discipline is exercised even
// though it is never actually contended.
type Store struct {
	mu     sync.RWMutex
	byKey  btree.Map[string, *Record]
	nextId symbol.FunctionId
}

func New() *Store {
	return &Store{}
}

// Lookup returns the current record for ssid, if any, under a read lock.
func (s *Store) Lookup(ssid symbol.SSID) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byKey.Get(ssid.Key())
	return r, ok
}

// Reserve installs a Partial record for ssid and returns its FunctionId,
// breaking recursion for any caller that observes it before the body is
// complete (§4.5.2 step 2-3). If ssid already has a record, Reserve
// returns that record's FunctionId and allocates nothing.
func (s *Store) Reserve(ssid symbol.SSID) symbol.FunctionId {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.byKey.Get(ssid.Key()); ok {
		return r.Id
	}

	id := s.nextId
	s.nextId++
	s.byKey.Set(ssid.Key(), &Record{Kind: Partial, Id: id})
	return id
}

// Complete finishes a previously Reserved entry, recording its compiled
// body. Calling Complete on an SSID never Reserved is a caller bug.
func (s *Store) Complete(ssid symbol.SSID, argTypes []typestore.TypeId, body mir.StaticExpression, returnType typestore.TypeId) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byKey.Get(ssid.Key())
	if !ok {
		panic("funcstore: Complete called without a matching Reserve: " + ssid.Key())
	}
	r.Kind = Complete
	r.ArgTypes = argTypes
	r.Body = body
	r.ReturnType = returnType
}

// Len reports the number of records currently in the store (tests only).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byKey.Len()
}
