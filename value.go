package stackvm

import (
	"fmt"
	"math"
	"strconv"
)

// Tag identifies the dynamic type carried by a Value. The zero Tag is Nil.
type Tag uint8

const (
	Nil Tag = iota
	IntTag
	FloatTag
	BoolTag
	StringTag
	ObjectTag
	ArrayTag
	ClosureTag
)

func (t Tag) String() string {
	switch t {
	case Nil:
		return "nil"
	case IntTag:
		return "int"
	case FloatTag:
		return "float"
	case BoolTag:
		return "bool"
	case StringTag:
		return "string"
	case ObjectTag:
		return "object"
	case ArrayTag:
		return "array"
	case ClosureTag:
		return "closure"
	default:
		return "[unknown type]"
	}
}

// Value is a tagged union over the eight value kinds the machine knows
// about. Heap-backed tags (String, Object, Array, Closure) carry a
// pointer into the Heap; the pointer is a non-owning handle, and its
// lifetime is governed by the garbage collector, not by Go's own GC
// reachability of the Value itself (the Heap keeps every live object
// registered independently so it can be swept on demand).
type Value struct {
	Tag Tag
	I   int64
	F   float64
	B   bool
	Obj *HeapObject
}

func NilValue() Value                 { return Value{Tag: Nil} }
func IntValue(i int64) Value          { return Value{Tag: IntTag, I: i} }
func FloatValue(f float64) Value      { return Value{Tag: FloatTag, F: f} }
func BoolValue(b bool) Value          { return Value{Tag: BoolTag, B: b} }
func StringValue(o *HeapObject) Value { return Value{Tag: StringTag, Obj: o} }
func ObjectValue(o *HeapObject) Value { return Value{Tag: ObjectTag, Obj: o} }
func ArrayValue(o *HeapObject) Value  { return Value{Tag: ArrayTag, Obj: o} }
func ClosureValue(o *HeapObject) Value {
	return Value{Tag: ClosureTag, Obj: o}
}

// IsNil reports whether v carries the Nil tag. STORE/STORE_FIELD/STORE_ITEM
// treat a Nil value specially: it erases the target key instead of
// inserting it.
func (v Value) IsNil() bool { return v.Tag == Nil }

// Eq implements §4.4 equality: mismatched tags are never equal, same-tag
// scalars compare by value, same-tag heap handles compare by identity.
func Eq(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case Nil:
		return true
	case IntTag:
		return a.I == b.I
	case FloatTag:
		return a.F == b.F
	case BoolTag:
		return a.B == b.B
	case StringTag:
		return a.Obj.str == b.Obj.str
	case ObjectTag, ArrayTag, ClosureTag:
		return a.Obj == b.Obj
	default:
		return false
	}
}

// Less implements the "<" half of §4.4 ordering comparisons for a shared
// INT/FLOAT/STRING tag. The caller is responsible for rejecting mismatched
// or unsupported tags before calling Less.
func Less(a, b Value) bool {
	switch a.Tag {
	case IntTag:
		return a.I < b.I
	case FloatTag:
		return a.F < b.F
	case StringTag:
		return a.Obj.str < b.Obj.str
	default:
		return false
	}
}

// Greater mirrors Less for the ">" comparison.
func Greater(a, b Value) bool {
	switch a.Tag {
	case IntTag:
		return a.I > b.I
	case FloatTag:
		return a.F > b.F
	case StringTag:
		return a.Obj.str > b.Obj.str
	default:
		return false
	}
}

// Stringify renders v the way OUT does (§6): scalars print their literal
// form, heap containers print a stable-within-run identity token.
func Stringify(v Value) string {
	switch v.Tag {
	case Nil:
		return "null"
	case BoolTag:
		if v.B {
			return "true"
		}
		return "false"
	case IntTag:
		return strconv.FormatInt(v.I, 10)
	case FloatTag:
		return formatFloat(v.F)
	case StringTag:
		return v.Obj.str
	case ObjectTag:
		return fmt.Sprintf("object@%p", v.Obj)
	case ArrayTag:
		return fmt.Sprintf("array@%p", v.Obj)
	case ClosureTag:
		return fmt.Sprintf("closure@%p", v.Obj)
	default:
		return "null"
	}
}

// formatFloat reproduces the original VM's printf("%f", ...) rendering:
// a fixed six fractional digits, per spec §6 and §9's design notes on
// matching the source's float stringification.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}
