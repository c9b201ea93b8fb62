package symbol

import (
	"testing"

	"github.com/solarlang/solar/internal/idpath"
)

func TestIdKeyDistinguishesItems(t *testing.T) {
	mod := idpath.Self
	fn := New(mod, 0, Func(1))
	gv := New(mod, 0, GlobalVar(1))
	if fn.Key() == gv.Key() {
		t.Fatalf("expected distinct keys for Func(1) and GlobalVar(1), got %q for both", fn.Key())
	}
}

func TestIdEqual(t *testing.T) {
	mod := idpath.New("self")
	a := New(mod, 2, Method(0, 3))
	b := New(mod, 2, Method(0, 3))
	if !a.Equal(b) {
		t.Fatalf("expected equal ids, got %q vs %q", a.Key(), b.Key())
	}
	c := New(mod, 2, Method(0, 4))
	if a.Equal(c) {
		t.Fatal("did not expect ids with differing FieldIndex to be equal")
	}
}

func TestSSIDKeyIncludesArgs(t *testing.T) {
	sym := New(idpath.Self, 0, Func(0))
	intInt := NewSSID(sym, []int{1, 1})
	intStr := NewSSID(sym, []int{1, 2})
	if intInt.Key() == intStr.Key() {
		t.Fatal("expected different argument-type tuples to yield different SSID keys")
	}

	niladic := NewSSID(sym, nil)
	if niladic.Key() == "" {
		t.Fatal("expected a non-empty key even with no arguments")
	}
}

func TestNewSSIDCopiesArgs(t *testing.T) {
	sym := New(idpath.Self, 0, Func(0))
	args := []int{1, 2}
	ssid := NewSSID(sym, args)
	args[0] = 99
	if ssid.Args[0] != 1 {
		t.Fatal("NewSSID must copy its args slice, not alias the caller's")
	}
}

func TestItemKindStrings(t *testing.T) {
	cases := []struct {
		item IdItem
		want string
	}{
		{Func(3), "Func(3)"},
		{GlobalVar(1), "GlobalVar(1)"},
		{Type(0), "Type(0)"},
		{Method(2, 5), "Method(2,5)"},
	}
	for _, c := range cases {
		if got := c.item.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
