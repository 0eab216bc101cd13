package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseConvert,
				Kind:     KindTypeMismatch,
				Path:     []string{"map[0]", "key"},
				GoType:   "chan int",
				WireKind: "Slice",
				Detail:   "cannot convert",
				Offset:   -1,
			},
			contains: []string{"[convert]", "type_mismatch", "map[0].key", "chan int", "Slice", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindUnknownTag,
				Offset: -1,
			},
			contains: []string{"[decode]", "unknown_tag"},
		},
		{
			name: "decode error with offset",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTruncated,
				Offset: 17,
				Detail: "need 4 more bytes, 2 remain",
			},
			contains: []string{"[decode]", "truncated", "offset 17", "need 4 more bytes"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindLengthOverflow,
				Detail: "slice too large",
				Cause:  errors.New("underlying error"),
				Offset: -1,
			},
			contains: []string{"[encode]", "length_overflow", "slice too large", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Cause:  cause,
		Offset: -1,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Path:   []string{"vec[3]"},
		Offset: 9,
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindTruncated}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindUnknownTag}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindTruncated}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseConvert, KindTypeMismatch).
		Path("vec[0]").
		GoType("struct {}").
		WireKind("Vector").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "slice", "struct").
		Build()

	if err.Phase != PhaseConvert {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConvert)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 1 || err.Path[0] != "vec[0]" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Detail != "expected slice, got struct" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Offset != -1 {
		t.Errorf("Offset = %d, want -1 by default", err.Offset)
	}
	if !errors.Is(err, err) {
		t.Error("error should match itself")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := Truncated(nil, 5, 8, 3); err.Kind != KindTruncated || err.Offset != 5 {
		t.Errorf("Truncated = %v", err)
	}
	if err := UnknownTag(nil, 0, 0x0E); err.Kind != KindUnknownTag || err.Value != byte(0x0E) {
		t.Errorf("UnknownTag = %v", err)
	}
	if err := Construction([]string{"vec[1]"}, "SmallU8 value %d over bound %d", 236, 235); !strings.Contains(err.Detail, "236") {
		t.Errorf("Construction = %v", err)
	}
	if err := LengthOverflow(PhaseEncode, nil, 1<<33); err.Kind != KindLengthOverflow {
		t.Errorf("LengthOverflow = %v", err)
	}
	if err := DepthExceeded(100, 1000); err.Kind != KindDepthExceeded || err.Offset != 100 {
		t.Errorf("DepthExceeded = %v", err)
	}
}
