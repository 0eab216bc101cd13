package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode  Phase = "encode"  // Value to wire bytes
	PhaseDecode  Phase = "decode"  // wire bytes to Value
	PhaseConvert Phase = "convert" // native Go value to/from Value
)

// Kind categorizes the error
type Kind string

const (
	KindConstruction   Kind = "construction"    // value built outside its legal domain
	KindTruncated      Kind = "truncated"       // buffer ends before a declared payload
	KindUnknownTag     Kind = "unknown_tag"     // tag byte matches no variant
	KindLengthOverflow Kind = "length_overflow" // length prefix exceeds representable size
	KindDepthExceeded  Kind = "depth_exceeded"  // nesting beyond the decode depth limit
	KindInvalidData    Kind = "invalid_data"
	KindTypeMismatch   Kind = "type_mismatch"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireKind string
	Detail   string
	Path     []string
	Offset   int // byte offset in the decode buffer, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.GoType != "" || e.WireKind != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireKind != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire kind ")
			b.WriteString(e.WireKind)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire kind ")
			b.WriteString(e.WireKind)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireKind != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the value path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireKind sets the wire variant name
func (b *Builder) WireKind(k string) *Builder {
	b.err.WireKind = k
	return b
}

// Offset sets the byte offset in the decode buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Construction creates a construction error for a value built outside its legal domain
func Construction(path []string, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindConstruction,
		Path:   path,
		Detail: fmt.Sprintf(detail, args...),
		Offset: -1,
	}
}

// Truncated creates a truncation error: the buffer ended before a declared payload
func Truncated(path []string, offset, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Path:   path,
		Offset: offset,
		Detail: fmt.Sprintf("need %d more bytes, %d remain", need, have),
	}
}

// UnknownTag creates an unknown-tag error for an unassigned tag byte
func UnknownTag(path []string, offset int, tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownTag,
		Path:   path,
		Offset: offset,
		Detail: fmt.Sprintf("tag 0x%02x matches no variant", tag),
		Value:  tag,
	}
}

// LengthOverflow creates a length-overflow error for an unrepresentable length
func LengthOverflow(phase Phase, path []string, length uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthOverflow,
		Path:   path,
		Detail: fmt.Sprintf("length %d exceeds representable size", length),
		Value:  length,
		Offset: -1,
	}
}

// DepthExceeded creates a depth error for nesting beyond the decode limit
func DepthExceeded(offset, max int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDepthExceeded,
		Offset: offset,
		Detail: fmt.Sprintf("nesting exceeds %d levels", max),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wireKind string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WireKind: wireKind,
		Offset:   -1,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
		Offset: -1,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
		Offset: -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}
