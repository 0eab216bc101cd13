package valwire

import (
	"math"
	"strconv"

	"github.com/wippyai/valwire/errors"
	"github.com/wippyai/valwire/internal/binary"
)

// Encode serializes v into a self-describing byte buffer. The encoding is
// depth-first pre-order: each node writes its one-byte tag and payload,
// then its children. A failed Encode returns no bytes.
func Encode(v Value) ([]byte, error) {
	w := binary.NewWriter()
	if err := encodeValue(w, v, nil); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeValue(w *binary.Writer, v Value, path []string) error {
	switch v.kind {
	case KindBool:
		if v.num != 0 {
			w.Byte(TagTrue)
		} else {
			w.Byte(TagFalse)
		}

	case KindI64:
		w.Byte(TagI64)
		w.WriteU64LE(v.num)

	case KindI32:
		w.Byte(TagI32)
		w.WriteU32LE(uint32(v.num))

	case KindU8:
		w.Byte(TagU8)
		w.Byte(byte(v.num))

	case KindSmallU8:
		// Validated before the byte is written; the tag carries the value.
		if v.num > MaxSmallU8 {
			return errors.Construction(path, "SmallU8 value %d over bound %d", v.num, MaxSmallU8)
		}
		w.Byte(smallU8Base + byte(v.num))

	case KindF64:
		w.Byte(TagF64)
		w.WriteU64LE(v.num)

	case KindF32:
		w.Byte(TagF32)
		w.WriteU32LE(uint32(v.num))

	case KindSlice, KindSliceLike:
		// Both variants share the Slice tag and representation.
		if uint64(len(v.bytes)) > math.MaxUint32 {
			return errors.LengthOverflow(errors.PhaseEncode, path, uint64(len(v.bytes)))
		}
		w.Byte(TagSlice)
		w.WriteU32LE(uint32(len(v.bytes)))
		w.Write(v.bytes)

	case KindOptional:
		w.Byte(TagOptional)
		if v.inner == nil {
			w.Byte(presenceNone)
			return nil
		}
		w.Byte(presenceSome)
		return encodeValue(w, *v.inner, append(path, "[some]"))

	case KindVector:
		if uint64(len(v.elems)) > math.MaxUint32 {
			return errors.LengthOverflow(errors.PhaseEncode, path, uint64(len(v.elems)))
		}
		w.Byte(TagVector)
		w.WriteU32LE(uint32(len(v.elems)))
		for i, e := range v.elems {
			if err := encodeValue(w, e, append(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}

	case KindHashMap:
		if uint64(len(v.pairs)) > math.MaxUint32 {
			return errors.LengthOverflow(errors.PhaseEncode, path, uint64(len(v.pairs)))
		}
		w.Byte(TagHashMap)
		w.WriteU32LE(uint32(len(v.pairs)))
		for i, p := range v.pairs {
			idx := "[" + strconv.Itoa(i) + "]"
			if err := encodeValue(w, p.Key, append(path, idx+".key")); err != nil {
				return err
			}
			if err := encodeValue(w, p.Val, append(path, idx+".value")); err != nil {
				return err
			}
		}

	default:
		return errors.Construction(path, "cannot encode %s value", v.kind)
	}

	return nil
}
