package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when a read runs past the end of the buffer.
var ErrUnexpectedEOF = errors.New("unexpected end of buffer")

// Reader is a bounds-checked cursor over an in-memory byte buffer.
// Every read is validated against the remaining length before any byte
// is touched. ReadBytes returns views into the underlying buffer, not
// copies, so the buffer must outlive anything retaining those views.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.wrapError(ErrUnexpectedEOF)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes, returning a view into the buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, r.wrapError(fmt.Errorf("negative read of %d bytes", n))
	}
	if r.Remaining() < n {
		return nil, r.wrapError(ErrUnexpectedEOF)
	}
	view := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return view, nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadU64LE reads a little-endian uint64 (fixed 8 bytes).
func (r *Reader) ReadU64LE() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}
