package valwire

import (
	"math"
	"strconv"

	"github.com/wippyai/valwire/errors"
	"github.com/wippyai/valwire/internal/binary"
)

// Decode reconstructs one complete value from the front of data. Bytes
// after the value are ignored. Decoded Slice values are views into data,
// which must outlive them; copy via SliceLike when that cannot hold.
// A failed Decode returns no usable value.
func Decode(data []byte) (Value, error) {
	v, _, err := DecodeNext(data)
	return v, err
}

// DecodeNext decodes one complete value and returns the number of bytes
// it consumed, so callers can walk values embedded in a larger buffer.
func DecodeNext(data []byte) (Value, int, error) {
	r := binary.NewReader(data)
	v, err := decodeValue(r, nil, 0)
	if err != nil {
		debugf("decode failed at offset %d: %v", r.Position(), err)
		return Value{}, 0, err
	}
	return v, r.Position(), nil
}

func decodeValue(r *binary.Reader, path []string, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, errors.DepthExceeded(r.Position(), MaxDepth)
	}

	tagOff := r.Position()
	tag, err := r.ReadByte()
	if err != nil {
		return Value{}, errors.Truncated(path, tagOff, 1, r.Remaining())
	}

	switch tag {
	case TagTrue:
		return Bool(true), nil

	case TagFalse:
		return Bool(false), nil

	case TagI64:
		n, err := r.ReadU64LE()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 8, r.Remaining())
		}
		return I64(int64(n)), nil

	case TagI32:
		n, err := r.ReadU32LE()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 4, r.Remaining())
		}
		return I32(int32(n)), nil

	case TagU8:
		b, err := r.ReadByte()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 1, r.Remaining())
		}
		return U8(b), nil

	case TagF64:
		n, err := r.ReadU64LE()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 8, r.Remaining())
		}
		return F64(math.Float64frombits(n)), nil

	case TagF32:
		n, err := r.ReadU32LE()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 4, r.Remaining())
		}
		return F32(math.Float32frombits(uint32(n))), nil

	case TagSlice:
		n, err := readLength(r, path, 1)
		if err != nil {
			return Value{}, err
		}
		view, err := r.ReadBytes(n)
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), n, r.Remaining())
		}
		// Always the borrowed variant; SliceLike is write-side only.
		return Slice(view), nil

	case TagOptional:
		flag, err := r.ReadByte()
		if err != nil {
			return Value{}, errors.Truncated(path, r.Position(), 1, r.Remaining())
		}
		switch flag {
		case presenceNone:
			return None(), nil
		case presenceSome:
			inner, err := decodeValue(r, append(path, "[some]"), depth+1)
			if err != nil {
				return Value{}, err
			}
			return Some(inner), nil
		default:
			return Value{}, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).
				Offset(r.Position() - 1).
				Detail("invalid presence flag 0x%02x", flag).
				Build()
		}

	case TagVector:
		count, err := readLength(r, path, 1)
		if err != nil {
			return Value{}, err
		}
		elems := make([]Value, 0, count)
		for i := 0; i < count; i++ {
			e, err := decodeValue(r, append(path, "["+strconv.Itoa(i)+"]"), depth+1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, e)
		}
		return Vector(elems...), nil

	case TagHashMap:
		count, err := readLength(r, path, 2)
		if err != nil {
			return Value{}, err
		}
		pairs := make([]Pair, 0, count)
		for i := 0; i < count; i++ {
			idx := "[" + strconv.Itoa(i) + "]"
			key, err := decodeValue(r, append(path, idx+".key"), depth+1)
			if err != nil {
				return Value{}, err
			}
			val, err := decodeValue(r, append(path, idx+".value"), depth+1)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: key, Val: val})
		}
		return HashMap(pairs...), nil

	default:
		if tag >= smallU8Base {
			return SmallU8(tag - smallU8Base), nil
		}
		return Value{}, errors.UnknownTag(path, tagOff, tag)
	}
}

// readLength reads a u32 length prefix and pre-checks it against the
// remaining bytes: every counted item occupies at least minItem bytes, so
// a count larger than remaining/minItem can never complete. This rejects
// crafted counts before any allocation sized by them.
func readLength(r *binary.Reader, path []string, minItem int) (int, error) {
	n, err := r.ReadU32LE()
	if err != nil {
		return 0, errors.Truncated(path, r.Position(), 4, r.Remaining())
	}
	if uint64(n) > uint64(math.MaxInt) {
		return 0, errors.LengthOverflow(errors.PhaseDecode, path, uint64(n))
	}
	if int(n) > r.Remaining()/minItem {
		return 0, errors.Truncated(path, r.Position(), int(n), r.Remaining())
	}
	return int(n), nil
}
