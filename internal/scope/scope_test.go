package scope

import (
	"testing"

	"github.com/solarlang/solar/internal/typestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAssignsMonotonicSlots(t *testing.T) {
	sc := New()
	slot0 := sc.Push("a", typestore.TypeId(1))
	slot1 := sc.Push("b", typestore.TypeId(2))
	assert.Equal(t, 0, slot0)
	assert.Equal(t, 1, slot1)
	assert.Equal(t, 2, sc.Len())
}

func TestGetShadowsInnermostBinding(t *testing.T) {
	sc := New()
	sc.Push("x", typestore.TypeId(1))
	sc.Push("x", typestore.TypeId(2))

	b, ok := sc.Get("x")
	require.True(t, ok)
	assert.Equal(t, typestore.TypeId(2), b.Type)
	assert.Equal(t, 1, b.Slot)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	sc := New()
	_, ok := sc.Get("missing")
	assert.False(t, ok)
}

func TestPopRemovesTopBindingButNotSlotCounter(t *testing.T) {
	sc := New()
	sc.Push("x", typestore.TypeId(1))
	sc.Pop()
	assert.Equal(t, 0, sc.Len())

	_, ok := sc.Get("x")
	assert.False(t, ok)

	// The slot counter keeps climbing even after a pop: slots identify a
	// binding's storage location for the life of the function, not a
	// currently-visible scope depth.
	slot := sc.Push("y", typestore.TypeId(1))
	assert.Equal(t, 1, slot)
}

func TestPopOnEmptyScopeIsNoop(t *testing.T) {
	sc := New()
	sc.Pop()
	assert.Equal(t, 0, sc.Len())
}
