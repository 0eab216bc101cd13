package valwire

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// Kind identifies a Value variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindI64
	KindI32
	KindU8
	KindSmallU8
	KindF64
	KindF32
	KindSlice     // borrowed byte view
	KindSliceLike // owned byte buffer; wire-identical to Slice, never decoded
	KindOptional
	KindVector
	KindHashMap
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindI64:
		return "I64"
	case KindI32:
		return "I32"
	case KindU8:
		return "U8"
	case KindSmallU8:
		return "SmallU8"
	case KindF64:
		return "F64"
	case KindF32:
		return "F32"
	case KindSlice:
		return "Slice"
	case KindSliceLike:
		return "SliceLike"
	case KindOptional:
		return "Optional"
	case KindVector:
		return "Vector"
	case KindHashMap:
		return "HashMap"
	default:
		return "Invalid"
	}
}

// Value is a member of the closed tagged union the codec serializes.
// The zero Value is invalid; build values with the constructors below.
//
// Composite values own their children. Slice values are views: a Slice
// built from caller bytes aliases them, and a Slice produced by Decode
// aliases the decode buffer, which must outlive the value. SliceLike
// always owns an independent copy.
type Value struct {
	kind  Kind
	num   uint64 // scalar payload bits (bool uses 0/1, floats their IEEE bits)
	bytes []byte
	inner *Value // Optional payload; nil means none
	elems []Value
	pairs []Pair
}

// Pair is one ordered key/value entry of a HashMap value.
type Pair struct {
	Key Value
	Val Value
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// I64 creates a 64-bit signed integer value.
func I64(v int64) Value {
	return Value{kind: KindI64, num: uint64(v)}
}

// I32 creates a 32-bit signed integer value.
func I32(v int32) Value {
	return Value{kind: KindI32, num: uint64(uint32(v))}
}

// U8 creates an 8-bit unsigned integer value.
func U8(v uint8) Value {
	return Value{kind: KindU8, num: uint64(v)}
}

// SmallU8 creates a single-byte unsigned integer value. The value must be
// at most MaxSmallU8; larger values are rejected at encode time with a
// construction error, so validate at the call site when v is not constant.
func SmallU8(v uint8) Value {
	return Value{kind: KindSmallU8, num: uint64(v)}
}

// F64 creates a 64-bit float value.
func F64(v float64) Value {
	return Value{kind: KindF64, num: math.Float64bits(v)}
}

// F32 creates a 32-bit float value.
func F32(v float32) Value {
	return Value{kind: KindF32, num: uint64(math.Float32bits(v))}
}

// Slice creates a byte value that aliases b without copying.
func Slice(b []byte) Value {
	return Value{kind: KindSlice, bytes: b}
}

// SliceLike creates a byte value owning an independent copy of b. It
// encodes identically to Slice and exists for callers that cannot keep
// the source buffer alive; the decoder never produces it.
func SliceLike(b []byte) Value {
	return Value{kind: KindSliceLike, bytes: bytes.Clone(b)}
}

// String creates a borrowed byte value from the bytes of s.
func String(s string) Value {
	return Slice([]byte(s))
}

// Some creates a present Optional wrapping v.
func Some(v Value) Value {
	return Value{kind: KindOptional, inner: &v}
}

// None creates an absent Optional.
func None() Value {
	return Value{kind: KindOptional}
}

// Vector creates an ordered sequence value.
func Vector(elems ...Value) Value {
	return Value{kind: KindVector, elems: elems}
}

// HashMap creates an ordered key/value mapping. Insertion order is
// preserved on the wire and on decode; pairs are never re-sorted or
// hashed, and duplicate keys are carried as-is.
func HashMap(pairs ...Pair) Value {
	return Value{kind: KindHashMap, pairs: pairs}
}

// Kind returns the value's variant.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num != 0, true
}

// AsI64 returns the 64-bit integer payload.
func (v Value) AsI64() (int64, bool) {
	if v.kind != KindI64 {
		return 0, false
	}
	return int64(v.num), true
}

// AsI32 returns the 32-bit integer payload.
func (v Value) AsI32() (int32, bool) {
	if v.kind != KindI32 {
		return 0, false
	}
	return int32(uint32(v.num)), true
}

// AsU8 returns the 8-bit integer payload of a U8 or SmallU8.
func (v Value) AsU8() (uint8, bool) {
	if v.kind != KindU8 && v.kind != KindSmallU8 {
		return 0, false
	}
	return uint8(v.num), true
}

// AsF64 returns the 64-bit float payload.
func (v Value) AsF64() (float64, bool) {
	if v.kind != KindF64 {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// AsF32 returns the 32-bit float payload.
func (v Value) AsF32() (float32, bool) {
	if v.kind != KindF32 {
		return 0, false
	}
	return math.Float32frombits(uint32(v.num)), true
}

// AsBytes returns the byte payload of a Slice or SliceLike.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindSlice && v.kind != KindSliceLike {
		return nil, false
	}
	return v.bytes, true
}

// AsString returns the byte payload of a Slice or SliceLike as a string.
func (v Value) AsString() (string, bool) {
	b, ok := v.AsBytes()
	if !ok {
		return "", false
	}
	return string(b), true
}

// Inner returns the payload of a present Optional.
func (v Value) Inner() (Value, bool) {
	if v.kind != KindOptional || v.inner == nil {
		return Value{}, false
	}
	return *v.inner, true
}

// IsNone reports whether v is an absent Optional.
func (v Value) IsNone() bool {
	return v.kind == KindOptional && v.inner == nil
}

// Elems returns the elements of a Vector.
func (v Value) Elems() []Value {
	if v.kind != KindVector {
		return nil
	}
	return v.elems
}

// Pairs returns the ordered entries of a HashMap.
func (v Value) Pairs() []Pair {
	if v.kind != KindHashMap {
		return nil
	}
	return v.pairs
}

// Len returns the element count of a Vector, the pair count of a HashMap,
// or the byte length of a Slice/SliceLike. Other kinds report 0.
func (v Value) Len() int {
	switch v.kind {
	case KindVector:
		return len(v.elems)
	case KindHashMap:
		return len(v.pairs)
	case KindSlice, KindSliceLike:
		return len(v.bytes)
	default:
		return 0
	}
}

// Equal reports structural equality. Slice and SliceLike compare equal
// when their bytes match, since they share one wire representation and
// decoding always yields Slice. Floats compare by stored bits, so NaN
// values with identical bit patterns are equal.
func (v Value) Equal(o Value) bool {
	vk, ok := v.kind, o.kind
	if vk == KindSliceLike {
		vk = KindSlice
	}
	if ok == KindSliceLike {
		ok = KindSlice
	}
	if vk != ok {
		return false
	}

	switch vk {
	case KindBool, KindI64, KindI32, KindU8, KindSmallU8, KindF64, KindF32:
		return v.num == o.num
	case KindSlice:
		return bytes.Equal(v.bytes, o.bytes)
	case KindOptional:
		if v.inner == nil || o.inner == nil {
			return v.inner == nil && o.inner == nil
		}
		return v.inner.Equal(*o.inner)
	case KindVector:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case KindHashMap:
		if len(v.pairs) != len(o.pairs) {
			return false
		}
		for i := range v.pairs {
			if !v.pairs[i].Key.Equal(o.pairs[i].Key) || !v.pairs[i].Val.Equal(o.pairs[i].Val) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the value tree in a compact single-line form for
// debugging and inspection.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case KindBool:
		fmt.Fprintf(b, "Bool(%t)", v.num != 0)
	case KindI64:
		fmt.Fprintf(b, "I64(%d)", int64(v.num))
	case KindI32:
		fmt.Fprintf(b, "I32(%d)", int32(uint32(v.num)))
	case KindU8:
		fmt.Fprintf(b, "U8(%d)", uint8(v.num))
	case KindSmallU8:
		fmt.Fprintf(b, "SmallU8(%d)", uint8(v.num))
	case KindF64:
		fmt.Fprintf(b, "F64(%g)", math.Float64frombits(v.num))
	case KindF32:
		fmt.Fprintf(b, "F32(%g)", math.Float32frombits(uint32(v.num)))
	case KindSlice, KindSliceLike:
		if isPrintable(v.bytes) {
			fmt.Fprintf(b, "%s(%q)", v.kind, v.bytes)
		} else {
			fmt.Fprintf(b, "%s(0x%x)", v.kind, v.bytes)
		}
	case KindOptional:
		if v.inner == nil {
			b.WriteString("None")
		} else {
			b.WriteString("Some(")
			v.inner.render(b)
			b.WriteByte(')')
		}
	case KindVector:
		b.WriteString("Vector[")
		for i, e := range v.elems {
			if i > 0 {
				b.WriteString(", ")
			}
			e.render(b)
		}
		b.WriteByte(']')
	case KindHashMap:
		b.WriteString("HashMap{")
		for i, p := range v.pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			p.Key.render(b)
			b.WriteString(": ")
			p.Val.render(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("Invalid")
	}
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return len(b) > 0
}
