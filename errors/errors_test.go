package errors

import (
	"errors"
	"fmt"
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
				Phase:    PhaseWrite,
				Kind:     KindTypeMismatch,
				Arg:      "string",
				Expected: "string",
				Actual:   "int",
				Detail:   "cannot encode",
			},
			contains: []string{"[write]", "type_mismatch", "at string", "expected string", "got int", "cannot encode"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSwap,
				Kind:  KindLengthPrecondition,
			},
			contains: []string{"[swap]", "length_precondition"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindRegistration,
				Detail: "register bytebuf.encode",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[host]", "registration", "bytebuf.encode", "caused by", "underlying error"},
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
		Phase: PhaseLoad,
		Kind:  KindInstantiation,
		Cause: cause,
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
		Phase: PhaseFill,
		Kind:  KindRangeViolation,
		Arg:   "offset",
	}

	if !err.Is(&Error{Phase: PhaseFill, Kind: KindRangeViolation}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseCopy, Kind: KindRangeViolation}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseFill, Kind: KindLengthPrecondition}) {
		t.Error("Is should not match different kind")
	}
	if !err.Is(&Error{Kind: KindRangeViolation}) {
		t.Error("Is should match any phase when target phase is empty")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, &Error{Kind: KindRangeViolation}) {
		t.Error("errors.Is should match through wrapping")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"direct", UnknownEncoding(PhaseCodec, "utf7"), KindUnknownEncoding},
		{"wrapped", fmt.Errorf("ctx: %w", LengthPrecondition(PhaseSwap, "odd")), KindLengthPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCompare, KindRangeViolation).
		Arg("targetEnd").
		Expected(">= 0 && <= 4").
		Actual("9").
		Value(9).
		Cause(cause).
		Detail("bound %s", "out of range").
		Build()

	if err.Phase != PhaseCompare {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCompare)
	}
	if err.Kind != KindRangeViolation {
		t.Errorf("Kind = %v, want %v", err.Kind, KindRangeViolation)
	}
	if err.Arg != "targetEnd" {
		t.Errorf("Arg = %v, want targetEnd", err.Arg)
	}
	if err.Expected != ">= 0 && <= 4" || err.Actual != "9" {
		t.Errorf("Expected=%q Actual=%q", err.Expected, err.Actual)
	}
	if err.Value != 9 {
		t.Errorf("Value = %v, want 9", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "bound out of range" {
		t.Errorf("Detail = %v, want 'bound out of range'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseValidate, "value", "string", 42)
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Actual != "int" {
			t.Errorf("Actual = %v, want int", err.Actual)
		}
	})

	t.Run("RangeViolation", func(t *testing.T) {
		err := RangeViolation(PhaseCopy, "sourceEnd", 10, 0, 4)
		if err.Kind != KindRangeViolation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRangeViolation)
		}
		if !strings.Contains(err.Error(), "<= 4") {
			t.Errorf("Error() = %q, should contain bound", err.Error())
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseAlloc, "offset", 10, 5)
		if err.Kind != KindRangeViolation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRangeViolation)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("UnknownEncoding", func(t *testing.T) {
		err := UnknownEncoding(PhaseCodec, "utf7")
		if err.Kind != KindUnknownEncoding {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownEncoding)
		}
		if !strings.Contains(err.Error(), `"utf7"`) {
			t.Errorf("Error() = %q, should quote name", err.Error())
		}
	})

	t.Run("Instantiation", func(t *testing.T) {
		err := Instantiation(errors.New("boom"))
		if err.Kind != KindInstantiation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInstantiation)
		}
	})
}
