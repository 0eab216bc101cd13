// Package valwire implements a compact, self-describing binary
// serialization format for a small fixed set of value shapes: scalars,
// byte slices, optionals, ordered sequences, and insertion-ordered
// key/value mappings, nested to any depth.
//
// # Value Model
//
// Values form a closed tagged union built with constructors:
//
//	valwire.I64(42)
//	valwire.Slice([]byte("key"))           // borrowed bytes
//	valwire.SliceLike([]byte("key"))       // owned copy, same wire form
//	valwire.Some(valwire.Bool(true))
//	valwire.Vector(valwire.I64(1), valwire.F64(2.5))
//	valwire.HashMap(valwire.Pair{Key: valwire.String("a"), Val: valwire.U8(7)})
//
// HashMap preserves insertion order on the wire and on decode; it is
// never re-sorted or hashed, so round-trip order is stable.
//
// # Wire Format
//
// Every encoded value begins with one tag byte followed by a
// variant-specific payload. All integers are little-endian; every
// variable-length payload is preceded by a fixed-width u32 length or
// count — the format has no delimiters or sentinels.
//
//	I64      0x00 + 8 bytes
//	Slice    0x01 + u32 length + raw bytes
//	Vector   0x02 + u32 count + element encodings
//	HashMap  0x04 + u32 pair count + key/value encodings
//	Bool     0x06 (true) / 0x07 (false)
//	F64      0x08 + 8 bytes
//	Optional 0x09 + presence byte + inner encoding iff present
//	I32      0x0B + 4 bytes
//	F32      0x0C + 4 bytes
//	U8       0x0D + 1 byte
//	SmallU8  single byte 0x14 + value, value <= 235
//
// # Encoding and Decoding
//
// Round-trip any constructible value:
//
//	data, err := valwire.Encode(v)
//	back, err := valwire.Decode(data)
//	// back.Equal(v) for every valid v
//
// Decode never panics or reads out of bounds on malformed input; it
// fails with typed errors (truncated, unknown_tag, length_overflow, ...)
// from the errors subpackage. Decoded Slice values borrow from the input
// buffer, which must outlive them.
//
// # Native Conversion
//
// Marshal and Unmarshal bridge common native Go shapes through the value
// model:
//
//	data, _ := valwire.Marshal(map[string]any{"n": int64(1)})
//	back, _ := valwire.Unmarshal(data)
//
// # Concurrency
//
// Encode and Decode are pure functions over caller-owned data; concurrent
// calls over independent values and buffers are safe. A single buffer
// must not be shared by concurrent operations.
package valwire
