// Package mir is the typed mid-level intermediate representation the
// compiler produces: a small expression tree (§3) paired with the
// TypeId each node evaluates to.
package mir

import (
	"github.com/solarlang/solar/internal/symbol"
	"github.com/solarlang/solar/internal/typestore"
)

// Instruction is the MIR expression sum type.
type Instruction interface {
	isInstruction()
}

// Const is a literal value.
type Const struct {
	Value Value
}

// GetLocalVar reads a binding by its scope slot.
type GetLocalVar struct {
	Slot int
}

// NewLocalVar introduces slot, bound to Value, visible within Body.
type NewLocalVar struct {
	Slot  int
	Value StaticExpression
	Body  StaticExpression
}

// FunctionCall invokes a compiled specialization by function-store index.
type FunctionCall struct {
	Func symbol.FunctionId
	Args []StaticExpression
}

// Custom is a built-in primitive operation (§4.6, extended by SPEC_FULL §D).
type Custom struct {
	Code CustomOpcode
	Args []StaticExpression
}

// IfExpr is the conditional (SPEC_FULL §B): Cond must type bool;
// CaseTrue/CaseFalse must share a TypeId, which becomes the result type.
type IfExpr struct {
	Cond      StaticExpression
	CaseTrue  StaticExpression
	CaseFalse StaticExpression
}

func (Const) isInstruction()        {}
func (GetLocalVar) isInstruction()  {}
func (NewLocalVar) isInstruction()  {}
func (FunctionCall) isInstruction() {}
func (Custom) isInstruction()       {}
func (IfExpr) isInstruction()       {}

// StaticExpression pairs an Instruction with the TypeId it produces.
// Invariant: Type equals the return type of Instr under the typing
// rules of §4.5.
type StaticExpression struct {
	Instr Instruction
	Type  typestore.TypeId
}

// CustomOpcode enumerates the built-in primitives Custom can carry.
type CustomOpcode int

const (
	StrConcat CustomOpcode = iota
	Print
	Readline
	Identity
	Add
	Sub
	Mul
	Div
	Lt
	Le
	Gt
	Ge
	Eq
)

func (c CustomOpcode) String() string {
	switch c {
	case StrConcat:
		return "StrConcat"
	case Print:
		return "Print"
	case Readline:
		return "Readline"
	case Identity:
		return "Identity"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Lt:
		return "Lt"
	case Le:
		return "Le"
	case Gt:
		return "Gt"
	case Ge:
		return "Ge"
	case Eq:
		return "Eq"
	default:
		return "Unknown"
	}
}
