// Package builtin implements the built-in dispatcher (§4.6, extended by
// SPEC_FULL §D) and the built-in type linker (§4.7).
package builtin

import (
	"strings"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/mir"
	"github.com/solarlang/solar/internal/typestore"
)

// IsBuiltinCall reports whether name names a built-in call (§4.5.4: "If
// the called name begins with buildin_ or Buildin_").
func IsBuiltinCall(name string) bool {
	return strings.HasPrefix(name, "buildin_") || strings.HasPrefix(name, "Buildin_")
}

func stripPrefix(name string) string {
	if strings.HasPrefix(name, "buildin_") {
		return name[len("buildin_"):]
	}
	return name[len("Buildin_"):]
}

var arithOps = map[string]mir.CustomOpcode{
	"add": mir.Add,
	"sub": mir.Sub,
	"mul": mir.Mul,
	"div": mir.Div,
}

var cmpOps = map[string]mir.CustomOpcode{
	"lt": mir.Lt,
	"le": mir.Le,
	"gt": mir.Gt,
	"ge": mir.Ge,
	"eq": mir.Eq,
}

// Dispatch implements the §4.6/§D table: given the built-in name (with
// or without its buildin_/Buildin_ prefix, which is stripped here) and
// its already-compiled argument StaticExpressions, it type
// checks the call and returns the resulting StaticExpression wrapping a
// Custom MIR node.
func Dispatch(store *typestore.Store, name string, args []mir.StaticExpression, span ast.Span) (mir.StaticExpression, error) {
	builtinName := name
	if IsBuiltinCall(name) {
		builtinName = stripPrefix(name)
	}

	switch builtinName {
	case "str_concat":
		for _, a := range args {
			if a.Type != store.Builtin.String {
				return mir.StaticExpression{}, diag.NewTypeMismatchError(store.Name(a.Type), "String", span)
			}
		}
		return mir.StaticExpression{
			Instr: mir.Custom{Code: mir.StrConcat, Args: args},
			Type:  store.Builtin.String,
		}, nil

	case "print":
		for _, a := range args {
			if a.Type != store.Builtin.String {
				return mir.StaticExpression{}, diag.NewTypeMismatchError(store.Name(a.Type), "String", span)
			}
		}
		return mir.StaticExpression{
			Instr: mir.Custom{Code: mir.Print, Args: args},
			Type:  store.Builtin.Uint,
		}, nil

	case "readline":
		if len(args) > 1 {
			return mir.StaticExpression{}, diag.NewWrongBuiltinError("readline", span)
		}
		if len(args) == 1 && args[0].Type != store.Builtin.String {
			return mir.StaticExpression{}, diag.NewTypeMismatchError(store.Name(args[0].Type), "String", span)
		}
		return mir.StaticExpression{
			Instr: mir.Custom{Code: mir.Readline, Args: args},
			Type:  store.Builtin.String,
		}, nil

	case "identity":
		if len(args) != 1 {
			return mir.StaticExpression{}, diag.NewWrongBuiltinError("identity", span)
		}
		return mir.StaticExpression{
			Instr: mir.Custom{Code: mir.Identity, Args: args},
			Type:  args[0].Type,
		}, nil

	default:
		if opcode, ok := arithOps[builtinName]; ok {
			return dispatchBinaryNumeric(store, opcode, args, span, false)
		}
		if opcode, ok := cmpOps[builtinName]; ok {
			return dispatchBinaryNumeric(store, opcode, args, span, true)
		}
		return mir.StaticExpression{}, diag.NewWrongBuiltinError(name, span)
	}
}

func dispatchBinaryNumeric(store *typestore.Store, opcode mir.CustomOpcode, args []mir.StaticExpression, span ast.Span, boolResult bool) (mir.StaticExpression, error) {
	if len(args) != 2 {
		return mir.StaticExpression{}, diag.NewWrongBuiltinError(opcode.String(), span)
	}
	if !store.IsNumeric(args[0].Type) {
		return mir.StaticExpression{}, diag.NewTypeMismatchError(store.Name(args[0].Type), "<numeric>", span)
	}
	if args[0].Type != args[1].Type {
		return mir.StaticExpression{}, diag.NewTypeMismatchError(store.Name(args[1].Type), store.Name(args[0].Type), span)
	}

	resultType := args[0].Type
	if boolResult {
		resultType = store.Builtin.Bool
	}
	return mir.StaticExpression{
		Instr: mir.Custom{Code: opcode, Args: args},
		Type:  resultType,
	}, nil
}
