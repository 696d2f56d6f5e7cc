// Package errors provides structured error types for the bytebuf module.
//
// Errors are categorized by Phase (which operation failed) and Kind (error category).
// The Error type carries the offending argument name, the expected and actual
// type or range, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFill, errors.KindRangeViolation).
//		Arg("offset").
//		Expected(">= 0 && <= 8").
//		Actual("12").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseWrite, "string", "string", v)
//	err := errors.RangeViolation(errors.PhaseCopy, "sourceEnd", 10, 0, 4)
//
// Kind-only matching works through a target with an empty Phase:
//
//	stderrors.Is(err, &errors.Error{Kind: errors.KindRangeViolation})
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
