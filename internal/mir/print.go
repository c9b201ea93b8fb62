package mir

import (
	"fmt"
	"strings"
)

// Dump renders a StaticExpression as an s-expression-ish tree, so tests
// can assert on MIR shape without a full interpreter.
func Dump(se StaticExpression) string {
	var b strings.Builder
	dump(&b, se)
	return b.String()
}

func dump(b *strings.Builder, se StaticExpression) {
	switch instr := se.Instr.(type) {
	case Const:
		fmt.Fprintf(b, "Const(%s)", dumpValue(instr.Value))
	case GetLocalVar:
		fmt.Fprintf(b, "GetLocalVar(%d)", instr.Slot)
	case NewLocalVar:
		fmt.Fprintf(b, "NewLocalVar(%d, ", instr.Slot)
		dump(b, instr.Value)
		b.WriteString(", ")
		dump(b, instr.Body)
		b.WriteString(")")
	case FunctionCall:
		fmt.Fprintf(b, "FunctionCall(%d, [", instr.Func)
		for i, a := range instr.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, a)
		}
		b.WriteString("])")
	case Custom:
		fmt.Fprintf(b, "Custom(%s, [", instr.Code)
		for i, a := range instr.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, a)
		}
		b.WriteString("])")
	case IfExpr:
		b.WriteString("IfExpr(")
		dump(b, instr.Cond)
		b.WriteString(", ")
		dump(b, instr.CaseTrue)
		b.WriteString(", ")
		dump(b, instr.CaseFalse)
		b.WriteString(")")
	default:
		b.WriteString("<?>")
	}
	fmt.Fprintf(b, ":%d", se.Type)
}

func dumpValue(v Value) string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case KindString:
		return fmt.Sprintf("%q", v.String)
	case KindFloat32, KindFloat64:
		return fmt.Sprintf("%g", v.Float)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return fmt.Sprintf("%d", v.Uint)
	default:
		return fmt.Sprintf("%d", v.Int)
	}
}
