package set

import "testing"

func TestNewSetIsEmpty(t *testing.T) {
	s := NewSet[string]()
	if s.Contains("anything") {
		t.Error("new set should contain nothing")
	}
}

func TestAddAndContains(t *testing.T) {
	s := NewSet[string]()

	s.Add("self")
	if !s.Contains("self") {
		t.Error("expected set to contain 'self' after Add")
	}
	if s.Contains("other") {
		t.Error("did not expect set to contain 'other'")
	}

	// adding the same key twice is idempotent
	s.Add("self")
	if !s.Contains("self") {
		t.Error("expected set to still contain 'self' after re-adding")
	}
}

func TestSetWithCustomComparableType(t *testing.T) {
	type basepath string
	s := NewSet[basepath]()
	s.Add(basepath("collections(corelib)/2.0.0"))
	if !s.Contains(basepath("collections(corelib)/2.0.0")) {
		t.Error("expected set to contain the added basepath")
	}
	if s.Contains(basepath("other(corelib)/1.0.0")) {
		t.Error("did not expect set to contain an unadded basepath")
	}
}
