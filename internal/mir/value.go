package mir

// ValueKind tags the variant carried by a Value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
)

// Value is the closed set of literal values a Const can carry, mirroring
// the built-in numeric widths spec.md's type store reserves TypeIds for.
type Value struct {
	Kind ValueKind

	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
	String string
}

func Bool(v bool) Value          { return Value{Kind: KindBool, Bool: v} }
func Int8(v int8) Value          { return Value{Kind: KindInt8, Int: int64(v)} }
func Int16(v int16) Value        { return Value{Kind: KindInt16, Int: int64(v)} }
func Int32(v int32) Value        { return Value{Kind: KindInt32, Int: int64(v)} }
func Int64(v int64) Value        { return Value{Kind: KindInt64, Int: v} }
func Uint8(v uint8) Value        { return Value{Kind: KindUint8, Uint: uint64(v)} }
func Uint16(v uint16) Value      { return Value{Kind: KindUint16, Uint: uint64(v)} }
func Uint32(v uint32) Value      { return Value{Kind: KindUint32, Uint: uint64(v)} }
func Uint64(v uint64) Value      { return Value{Kind: KindUint64, Uint: v} }
func Float32(v float32) Value    { return Value{Kind: KindFloat32, Float: float64(v)} }
func Float64(v float64) Value    { return Value{Kind: KindFloat64, Float: v} }
func String(v string) Value      { return Value{Kind: KindString, String: v} }
