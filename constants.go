package valwire

// Wire tags. One byte, assigned once; changing an assignment breaks every
// previously serialized buffer.
const (
	TagI64      = 0x00 // + 8 bytes LE
	TagSlice    = 0x01 // + u32 LE length + raw bytes
	TagVector   = 0x02 // + u32 LE count + element encodings
	TagHashMap  = 0x04 // + u32 LE pair count + key/value encodings
	TagTrue     = 0x06
	TagFalse    = 0x07
	TagF64      = 0x08 // + 8 bytes LE IEEE-754 bits
	TagOptional = 0x09 // + 1 presence byte + inner encoding iff present
	TagI32      = 0x0B // + 4 bytes LE
	TagF32      = 0x0C // + 4 bytes LE IEEE-754 bits
	TagU8       = 0x0D // + 1 byte

	// SmallU8 folds its value into the tag byte: 0x14 + value. The whole
	// range 0x14..0xFF is SmallU8, which is where the 235 bound comes from.
	smallU8Base = 0x14
)

// Optional presence flags.
const (
	presenceNone = 0x00
	presenceSome = 0x01
)

// MaxSmallU8 is the largest value a SmallU8 can hold (255 - 0x14).
const MaxSmallU8 = 0xFF - smallU8Base

// MaxDepth bounds value nesting during decode. The format itself has no
// depth limit; this guards the recursive decoder against crafted buffers
// such as a long run of Optional-some prefixes.
const MaxDepth = 1000
