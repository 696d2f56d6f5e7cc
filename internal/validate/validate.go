// Package validate rejects malformed dynamically typed arguments before they
// reach a codec.
package validate

import (
	"math"

	"github.com/wippyai/bytebuf/errors"
)

// Bytes is implemented by buffer-like values.
type Bytes interface {
	Bytes() []byte
}

// String returns v as a string.
func String(v any, arg string) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []rune:
		return string(s), nil
	}
	return "", errors.TypeMismatch(errors.PhaseValidate, arg, "string", v)
}

// Buffer returns the bytes of a []byte or buffer-like value without copying.
func Buffer(v any, arg string) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case Bytes:
		if b != nil {
			return b.Bytes(), nil
		}
	}
	return nil, errors.TypeMismatch(errors.PhaseValidate, arg, "buffer", v)
}

// Integer returns v as an int. Floats must hold an integral value.
func Integer(v any, arg string) (int, error) {
	n, ok := CoerceToInt(v)
	if !ok {
		return 0, errors.TypeMismatch(errors.PhaseValidate, arg, "integer", v)
	}
	return n, nil
}

// IntegerInRange returns v as an int in [lo, hi].
func IntegerInRange(v any, arg string, lo, hi int) (int, error) {
	n, err := Integer(v, arg)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, errors.RangeViolation(errors.PhaseValidate, arg, n, lo, hi)
	}
	return n, nil
}

// CoerceToInt handles every Go integer type and integral floats.
func CoerceToInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v), true
		}
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		if uint64(v) <= math.MaxInt {
			return int(v), true
		}
	case uint:
		if v <= math.MaxInt {
			return int(v), true
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v), true
		}
	case float64:
		if v >= math.MinInt64 && v < math.MaxInt64 && v == math.Trunc(v) {
			return int(v), true
		}
	case float32:
		f := float64(v)
		if f >= math.MinInt64 && f < math.MaxInt64 && f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}

// Truncate coerces any numeric value to int64, truncating floats toward
// zero. NaN truncates to 0 and infinities saturate.
func Truncate(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return truncFloat(v), true
	case float32:
		return truncFloat(float64(v)), true
	case uint64:
		return int64(v), true
	case uint:
		return int64(v), true
	}
	n, ok := CoerceToInt(value)
	return int64(n), ok
}

func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
