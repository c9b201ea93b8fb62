// Package symbol defines SymbolId, the globally unique reference to a
// declared item, and SSID, the memoization key for a monomorphized
// function specialization.
package symbol

import (
	"fmt"
	"strings"

	"github.com/solarlang/solar/internal/idpath"
)

// ItemKind tags the variant carried by an IdItem.
type ItemKind int

const (
	KindFunc ItemKind = iota
	KindGlobalVar
	KindType
	KindMethod
)

// IdItem is a tagged variant over the kinds of items a SymbolId can name.
// Index (and FieldIndex for Method) are positions of items in the file's
// AST, assigned by the module indexer / symbol finder.
type IdItem struct {
	Kind       ItemKind
	Index      int
	FieldIndex int // only meaningful when Kind == KindMethod
}

func Func(index int) IdItem       { return IdItem{Kind: KindFunc, Index: index} }
func GlobalVar(index int) IdItem  { return IdItem{Kind: KindGlobalVar, Index: index} }
func Type(index int) IdItem       { return IdItem{Kind: KindType, Index: index} }
func Method(typeIndex, fieldIndex int) IdItem {
	return IdItem{Kind: KindMethod, Index: typeIndex, FieldIndex: fieldIndex}
}

func (i IdItem) String() string {
	switch i.Kind {
	case KindFunc:
		return fmt.Sprintf("Func(%d)", i.Index)
	case KindGlobalVar:
		return fmt.Sprintf("GlobalVar(%d)", i.Index)
	case KindType:
		return fmt.Sprintf("Type(%d)", i.Index)
	case KindMethod:
		return fmt.Sprintf("Method(%d,%d)", i.Index, i.FieldIndex)
	default:
		return "Unknown"
	}
}

// Id is a SymbolId: (IdModule, IdFile, IdItem). SymbolIds are immutable
// and globally unique once assigned by the module indexer.
type Id struct {
	Module idpath.Path
	File   uint16
	Item   IdItem
}

func New(module idpath.Path, file uint16, item IdItem) Id {
	return Id{Module: module, File: file, Item: item}
}

// Key returns a string suitable as an ordered-map key for Id.
func (id Id) Key() string {
	return fmt.Sprintf("%s#%d#%s", id.Module.String(), id.File, id.Item.String())
}

func (id Id) Equal(other Id) bool {
	return id.Key() == other.Key()
}

func (id Id) String() string {
	return id.Key()
}

// SSID is the static symbol id: the memoization key for a monomorphized
// function. The same source function compiled for two different
// argument-type tuples yields two distinct SSIDs.
type SSID struct {
	Symbol Id
	Args   []int // TypeIds, kept as plain ints; symbol does not import typestore
}

func NewSSID(sym Id, args []int) SSID {
	cp := make([]int, len(args))
	copy(cp, args)
	return SSID{Symbol: sym, Args: cp}
}

// Key renders the SSID as a string suitable as an ordered-map key.
func (s SSID) Key() string {
	var b strings.Builder
	b.WriteString(s.Symbol.Key())
	b.WriteByte('[')
	for i, a := range s.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", a)
	}
	b.WriteByte(']')
	return b.String()
}

// FunctionId is the index of a compiled specialization within the
// function store, used by MIR's FunctionCall to name its callee.
type FunctionId int
