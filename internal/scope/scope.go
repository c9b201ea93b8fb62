// Package scope implements the compile-time Scope stack (§3, §4.5.2): an
// ordered list of (name, TypeId, slot) bindings local to one function
// compilation, plus the per-function monotonic slot counter.
package scope

import "github.com/solarlang/solar/internal/typestore"

// Binding is one entry of the Scope stack.
type Binding struct {
	Name string
	Type typestore.TypeId
	Slot int
}

// Scope is strictly stack-local per function compilation (§5: "no
// sharing"). Slots are unique within a function.
type Scope struct {
	bindings []Binding
	nextSlot int
}

func New() *Scope {
	return &Scope{}
}

// Push introduces a binding, returning its freshly assigned slot.
func (s *Scope) Push(name string, ty typestore.TypeId) int {
	slot := s.nextSlot
	s.nextSlot++
	s.bindings = append(s.bindings, Binding{Name: name, Type: ty, Slot: slot})
	return slot
}

// Get returns the innermost binding for name, shadowing any earlier one.
func (s *Scope) Get(name string) (Binding, bool) {
	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].Name == name {
			return s.bindings[i], true
		}
	}
	return Binding{}, false
}

// Pop removes the top binding.
func (s *Scope) Pop() {
	if len(s.bindings) == 0 {
		return
	}
	s.bindings = s.bindings[:len(s.bindings)-1]
}

// Len reports the number of bindings currently pushed.
func (s *Scope) Len() int {
	return len(s.bindings)
}
