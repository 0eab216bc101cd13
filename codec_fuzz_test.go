package valwire_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/valwire"
)

func FuzzDecode(f *testing.F) {
	// Seed every variant once
	f.Add([]byte{0x06})
	f.Add([]byte{0x00, 0x2A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x0B, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x0D, 0xF0})
	f.Add([]byte{0x14})
	f.Add([]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F})
	f.Add([]byte{0x0C, 0x00, 0x00, 0xC0, 0x3F})
	f.Add([]byte{0x01, 0x02, 0x00, 0x00, 0x00, 'a', 'b'})
	f.Add([]byte{0x09, 0x01, 0x06})
	f.Add([]byte{0x02, 0x01, 0x00, 0x00, 0x00, 0x07})
	f.Add([]byte{0x04, 0x01, 0x00, 0x00, 0x00, 0x14, 0x15})

	// Seed malformed shapes
	f.Add([]byte{})
	f.Add([]byte{0x03})
	f.Add([]byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x09, 0x01, 0x09, 0x01, 0x09, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		// Decoding arbitrary bytes must never panic
		v, n, err := valwire.DecodeNext(data)
		if err != nil {
			return
		}
		if n < 1 || n > len(data) {
			t.Fatalf("consumed %d of %d bytes", n, len(data))
		}

		// Anything that decodes must re-encode to the consumed bytes and
		// survive a second trip unchanged
		out, err := valwire.Encode(v)
		if err != nil {
			t.Fatalf("re-encode of decoded value failed: %v", err)
		}
		if !bytes.Equal(out, data[:n]) {
			t.Fatalf("re-encode differs from input:\n in: % x\nout: % x", data[:n], out)
		}
		back, err := valwire.Decode(out)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if !back.Equal(v) {
			t.Fatalf("value changed across round trip:\n in: %s\nout: %s", v, back)
		}
	})
}
