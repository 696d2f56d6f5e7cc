package buffer

import (
	"bytes"

	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/native"
)

// Compare orders a against b. A shorter buffer sorts first regardless of
// content; equal lengths compare bytewise.
func Compare(a, b *Buffer) int {
	n, _ := CompareOffset(a, b, Unset, Unset, Unset, Unset)
	return n
}

// CompareOffset orders source[sourceStart:sourceEnd] against
// target[targetStart:targetEnd]. Unset bounds default to the whole buffer;
// a set bound outside its buffer is a range error.
func CompareOffset(source, target *Buffer, targetStart, sourceStart, targetEnd, sourceEnd Bound) (int, error) {
	ts, te := targetStart.or(0), targetEnd.or(target.length)
	ss, se := sourceStart.or(0), sourceEnd.or(source.length)

	if ts < 0 {
		return 0, errors.RangeViolation(errors.PhaseCompare, "targetStart", ts, 0, target.length)
	}
	if te > target.length {
		return 0, errors.RangeViolation(errors.PhaseCompare, "targetEnd", te, 0, target.length)
	}
	if ss < 0 {
		return 0, errors.RangeViolation(errors.PhaseCompare, "sourceStart", ss, 0, source.length)
	}
	if se > source.length {
		return 0, errors.RangeViolation(errors.PhaseCompare, "sourceEnd", se, 0, source.length)
	}

	tl, sl := max(te-ts, 0), max(se-ss, 0)
	switch {
	case sl < tl:
		return -1, nil
	case sl > tl:
		return 1, nil
	case sl == 0:
		return 0, nil
	}
	return native.Memcmp(source.Bytes()[ss:se], target.Bytes()[ts:te]), nil
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *Buffer) bool {
	return a.length == b.length && bytes.Equal(a.Bytes(), b.Bytes())
}
