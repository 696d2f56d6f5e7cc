package buffer

import "github.com/wippyai/bytebuf/errors"

// Copy copies source[sourceStart:sourceEnd] into target at targetStart and
// returns the number of bytes copied. The copy is truncated to the space left
// in target; overlapping views of one storage behave like memmove.
func Copy(source, target *Buffer, targetStart, sourceStart, sourceEnd Bound) (int, error) {
	ts := targetStart.or(0)
	ss, se := sourceStart.or(0), sourceEnd.or(source.length)

	if ss < 0 {
		return 0, errors.RangeViolation(errors.PhaseCopy, "sourceStart", ss, 0, source.length)
	}
	if se > source.length {
		return 0, errors.RangeViolation(errors.PhaseCopy, "sourceEnd", se, 0, source.length)
	}
	if ts < 0 {
		return 0, errors.RangeViolation(errors.PhaseCopy, "targetStart", ts, 0, target.length)
	}
	if se <= ss || ts >= target.length {
		return 0, nil
	}

	n := min(se-ss, target.length-ts)
	return copy(target.Bytes()[ts:ts+n], source.Bytes()[ss:ss+n]), nil
}

// Copy copies b into target; see the package-level Copy.
func (b *Buffer) Copy(target *Buffer, targetStart, sourceStart, sourceEnd Bound) (int, error) {
	return Copy(b, target, targetStart, sourceStart, sourceEnd)
}
