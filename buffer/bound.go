package buffer

// Bound is an optional caller-supplied index.
//
// For slice, write, compare, copy and fill bounds a Bound set to zero
// selects the default exactly like an unset one.
type Bound struct {
	n  int
	ok bool
}

// Unset is the absent bound.
var Unset = Bound{}

// At returns a bound set to n.
func At(n int) Bound {
	return Bound{n: n, ok: true}
}

// Get returns the bound value and whether it was set.
func (b Bound) Get() (int, bool) {
	return b.n, b.ok
}

func (b Bound) or(def int) int {
	if b.ok && b.n != 0 {
		return b.n
	}
	return def
}

// Range is a resolved [Start, End) interval within a buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Resolve clamps start and end against a buffer of length bytes. Missing
// bounds default to 0 and length; an end before its start yields an empty
// range.
func Resolve(length int, start, end Bound) Range {
	s := max(start.or(0), 0)
	e := min(end.or(length), length)
	if e < s {
		s = min(s, length)
		return Range{Start: s, End: s}
	}
	return Range{Start: s, End: e}
}

// resolveWrite clamps an (offset, length) pair for a write. ok is false when
// offset lies past the end of the buffer.
func resolveWrite(size int, offset, length Bound) (Range, bool) {
	off := max(offset.or(0), 0)
	if off > size {
		return Range{}, false
	}
	n := max(length.or(size-off), 0)
	if off+n > size {
		n = size - off
	}
	return Range{Start: off, End: off + n}, true
}
