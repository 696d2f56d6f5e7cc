package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseSlice    Phase = "slice"    // bytes to text
	PhaseWrite    Phase = "write"    // text to bytes
	PhaseCompare  Phase = "compare"  // compare, compareOffset
	PhaseSearch   Phase = "search"   // indexOf family
	PhaseFill     Phase = "fill"     // pattern fill
	PhaseSwap     Phase = "swap"     // byte order reversal
	PhaseCopy     Phase = "copy"     // buffer to buffer copy
	PhaseAlloc    Phase = "alloc"    // buffer construction
	PhaseValidate Phase = "validate" // argument preconditions
	PhaseCodec    Phase = "codec"    // encoding lookup
	PhaseHost     Phase = "host"     // host module registration and calls
	PhaseLoad     Phase = "load"     // guest module loading
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch       Kind = "type_mismatch"
	KindRangeViolation     Kind = "range_violation"
	KindUnknownEncoding    Kind = "unknown_encoding"
	KindLengthPrecondition Kind = "length_precondition"
	KindInvalidInput       Kind = "invalid_input"
	KindRegistration       Kind = "registration"
	KindInstantiation      Kind = "instantiation"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Arg      string
	Expected string
	Actual   string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Arg != "" {
		b.WriteString(" at ")
		b.WriteString(e.Arg)
	}

	typed := e.Expected != "" || e.Actual != ""
	if typed {
		b.WriteString(": ")
		switch {
		case e.Expected != "" && e.Actual != "":
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		case e.Expected != "":
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		default:
			b.WriteString("got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if typed {
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

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Arg sets the offending argument name
func (b *Builder) Arg(name string) *Builder {
	b.err.Arg = name
	return b
}

// Expected sets the expected type or range
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Actual sets the received type or value description
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
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

// TypeMismatch creates a type mismatch error for argument arg
func TypeMismatch(phase Phase, arg, expected string, value any) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Arg:      arg,
		Expected: expected,
		Actual:   fmt.Sprintf("%T", value),
		Value:    value,
	}
}

// RangeViolation creates a range error for argument arg outside [lo, hi]
func RangeViolation(phase Phase, arg string, value, lo, hi int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindRangeViolation,
		Arg:      arg,
		Expected: fmt.Sprintf(">= %d && <= %d", lo, hi),
		Actual:   fmt.Sprintf("%d", value),
		Value:    value,
	}
}

// OutOfBounds creates a range error for an access past the end of a region
func OutOfBounds(phase Phase, arg string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeViolation,
		Arg:    arg,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// UnknownEncoding creates an unknown encoding error
func UnknownEncoding(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownEncoding,
		Arg:    "encoding",
		Detail: fmt.Sprintf("unknown encoding %q", name),
		Value:  name,
	}
}

// LengthPrecondition creates a length precondition error
func LengthPrecondition(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthPrecondition,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: "instantiate module",
		Cause:  cause,
	}
}
