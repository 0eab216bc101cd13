package valwire_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/valwire"
	codecerr "github.com/wippyai/valwire/errors"
)

func TestFromScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want valwire.Value
	}{
		{"nil", nil, valwire.None()},
		{"bool", true, valwire.Bool(true)},
		{"int", 7, valwire.I64(7)},
		{"int64", int64(-9), valwire.I64(-9)},
		{"int8", int8(-1), valwire.I32(-1)},
		{"int16", int16(300), valwire.I32(300)},
		{"int32", int32(-5), valwire.I32(-5)},
		{"uint8", uint8(200), valwire.U8(200)},
		{"float32", float32(1.5), valwire.F32(1.5)},
		{"float64", 2.5, valwire.F64(2.5)},
		{"string", "hi", valwire.SliceLike([]byte("hi"))},
		{"bytes", []byte{1, 2}, valwire.Slice([]byte{1, 2})},
		{"value passthrough", valwire.SmallU8(3), valwire.SmallU8(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valwire.From(tt.in)
			if err != nil {
				t.Fatalf("From(%v): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("From(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromStringOwnsBytes(t *testing.T) {
	v, err := valwire.From("abc")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != valwire.KindSliceLike {
		t.Errorf("From(string) kind = %s, want SliceLike", v.Kind())
	}
}

func TestFromMapDeterministic(t *testing.T) {
	m := map[string]any{"b": int64(2), "a": int64(1), "c": int64(3)}

	first, err := valwire.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := valwire.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("map encoding not deterministic:\n% x\n% x", first, again)
		}
	}

	v, err := valwire.From(m)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, p := range v.Pairs() {
		k, _ := p.Key.AsString()
		keys = append(keys, k)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("keys = %v, want sorted", keys)
	}
}

func TestFromUnsupportedType(t *testing.T) {
	_, err := valwire.From(struct{ X int }{1})
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
	target := &codecerr.Error{Phase: codecerr.PhaseConvert, Kind: codecerr.KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Errorf("err = %v, want convert type mismatch", err)
	}
}

func TestFromNestedErrorNamesPath(t *testing.T) {
	_, err := valwire.From([]any{int64(1), map[string]any{"bad": make(chan int)}})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !bytes.Contains([]byte(msg), []byte("[1].bad")) {
		t.Errorf("error does not name the failing path: %v", err)
	}
}

func TestInterfaceInverse(t *testing.T) {
	in := map[string]any{
		"n":     int64(42),
		"f":     2.5,
		"yes":   true,
		"blob":  []byte{0xDE, 0xAD},
		"none":  nil,
		"items": []any{int64(1), "two"},
	}

	out, err := valwire.Unmarshal(mustMarshal(t, in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("Unmarshal returned %T", out)
	}

	if m["n"] != int64(42) || m["f"] != 2.5 || m["yes"] != true || m["none"] != nil {
		t.Errorf("scalars did not survive: %v", m)
	}
	if !bytes.Equal(m["blob"].([]byte), []byte{0xDE, 0xAD}) {
		t.Errorf("blob = %v", m["blob"])
	}
	items := m["items"].([]any)
	if items[0] != int64(1) {
		t.Errorf("items[0] = %v", items[0])
	}
	// Strings encode as byte slices; they come back as []byte.
	if !bytes.Equal(items[1].([]byte), []byte("two")) {
		t.Errorf("items[1] = %v", items[1])
	}
}

func TestInterfaceNonByteKeys(t *testing.T) {
	v := valwire.HashMap(
		valwire.Pair{Key: valwire.I64(1), Val: valwire.String("one")},
		valwire.Pair{Key: valwire.I64(2), Val: valwire.String("two")},
	)
	out := v.Interface()
	pairs, ok := out.([][2]any)
	if !ok {
		t.Fatalf("Interface returned %T, want ordered pairs", out)
	}
	if len(pairs) != 2 || pairs[0][0] != int64(1) || pairs[1][0] != int64(2) {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestMarshalRejectsUnsupported(t *testing.T) {
	if _, err := valwire.Marshal(func() {}); err == nil {
		t.Fatal("expected error")
	}
}

func mustMarshal(t *testing.T, x any) []byte {
	t.Helper()
	data, err := valwire.Marshal(x)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return data
}
