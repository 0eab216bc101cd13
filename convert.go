package valwire

import (
	"fmt"
	"sort"

	"github.com/wippyai/valwire/errors"
)

// From converts common native Go shapes into the corresponding Value
// variant. It is a convenience layer, not part of the wire contract:
//
//	nil            -> None
//	bool           -> Bool
//	int, int64     -> I64
//	int8, int16, int32 -> I32
//	uint8          -> U8
//	float32        -> F32
//	float64        -> F64
//	string         -> SliceLike (owned copy)
//	[]byte         -> Slice (borrowed)
//	[]any          -> Vector, converting each element
//	map[string]any -> HashMap with keys sorted for deterministic output
//	Value, *Value  -> passed through
func From(x any) (Value, error) {
	return fromNative(x, nil)
}

func fromNative(x any, path []string) (Value, error) {
	switch v := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return None(), nil
		}
		return *v, nil
	case bool:
		return Bool(v), nil
	case int:
		return I64(int64(v)), nil
	case int64:
		return I64(v), nil
	case int8:
		return I32(int32(v)), nil
	case int16:
		return I32(int32(v)), nil
	case int32:
		return I32(v), nil
	case uint8:
		return U8(v), nil
	case float32:
		return F32(v), nil
	case float64:
		return F64(v), nil
	case string:
		return SliceLike([]byte(v)), nil
	case []byte:
		return Slice(v), nil
	case []any:
		elems := make([]Value, 0, len(v))
		for i, e := range v {
			ev, err := fromNative(e, append(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return Vector(elems...), nil
	case map[string]any:
		// Go map iteration order is randomized; sort keys so identical
		// inputs always produce identical wire bytes.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, 0, len(v))
		for _, k := range keys {
			val, err := fromNative(v[k], append(path, k))
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: SliceLike([]byte(k)), Val: val})
		}
		return HashMap(pairs...), nil
	default:
		return Value{}, errors.TypeMismatch(errors.PhaseConvert, path, fmt.Sprintf("%T", x), "")
	}
}

// Interface converts the value back to a native Go shape, the inverse of
// From. Slice and SliceLike both become []byte; Optional becomes nil or
// its inner conversion; Vector becomes []any. HashMap becomes
// map[string]any when every key is a byte value (insertion order is lost
// in the map), otherwise an ordered [][2]any of converted pairs.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.num != 0
	case KindI64:
		b, _ := v.AsI64()
		return b
	case KindI32:
		b, _ := v.AsI32()
		return b
	case KindU8, KindSmallU8:
		return uint8(v.num)
	case KindF64:
		b, _ := v.AsF64()
		return b
	case KindF32:
		b, _ := v.AsF32()
		return b
	case KindSlice, KindSliceLike:
		return v.bytes
	case KindOptional:
		if v.inner == nil {
			return nil
		}
		return v.inner.Interface()
	case KindVector:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindHashMap:
		stringKeyed := true
		for _, p := range v.pairs {
			if p.Key.kind != KindSlice && p.Key.kind != KindSliceLike {
				stringKeyed = false
				break
			}
		}
		if stringKeyed {
			out := make(map[string]any, len(v.pairs))
			for _, p := range v.pairs {
				out[string(p.Key.bytes)] = p.Val.Interface()
			}
			return out
		}
		out := make([][2]any, len(v.pairs))
		for i, p := range v.pairs {
			out[i] = [2]any{p.Key.Interface(), p.Val.Interface()}
		}
		return out
	default:
		return nil
	}
}
