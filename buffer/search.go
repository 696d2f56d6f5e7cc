package buffer

import (
	"bytes"

	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/internal/validate"
	"github.com/wippyai/bytebuf/native"
)

// searchOffset applies the offset rules shared by the indexOf primitives.
// Unlike the other bounds, a search offset of zero is an explicit origin.
func searchOffset(size int, offset Bound, forward bool) (int, error) {
	off, ok := offset.Get()
	if !ok {
		if forward {
			return 0, nil
		}
		return size - 1, nil
	}
	if off < 0 || off >= size {
		return 0, errors.RangeViolation(errors.PhaseSearch, "offset", off, 0, size-1)
	}
	return off, nil
}

// IndexOfBuffer returns the index of needle in haystack, searching forward or
// backward from offset, or -1. The offset must lie within the haystack.
func IndexOfBuffer(haystack, needle *Buffer, offset Bound, forward bool) (int, error) {
	off, err := searchOffset(haystack.length, offset, forward)
	if err != nil {
		return 0, err
	}
	if haystack.length == 0 {
		if needle.length == 0 {
			return 0, nil
		}
		return -1, nil
	}
	if needle.length == 0 && !forward {
		if _, ok := offset.Get(); !ok {
			return haystack.length, nil
		}
	}
	return native.Memmem(haystack.Bytes(), needle.Bytes(), off, forward), nil
}

// IndexOfNumber returns the index of byte(value) in b, or -1.
func IndexOfNumber(b *Buffer, value int, offset Bound, forward bool) (int, error) {
	off, err := searchOffset(b.length, offset, forward)
	if err != nil {
		return 0, err
	}
	if b.length == 0 {
		return -1, nil
	}
	p, c := b.Bytes(), byte(value)
	if forward {
		if i := bytes.IndexByte(p[off:], c); i >= 0 {
			return i + off, nil
		}
		return -1, nil
	}
	return bytes.LastIndexByte(p[:off+1], c), nil
}

// IndexOfString encodes needle with enc and searches for it in b. Only UTF8,
// UTF16LE and Latin1 are accepted.
func IndexOfString(b *Buffer, needle string, offset Bound, enc Encoding, forward bool) (int, error) {
	n, err := encodeNeedle(needle, enc)
	if err != nil {
		return 0, err
	}
	return IndexOfBuffer(b, From(n), offset, forward)
}

func encodeNeedle(s string, enc Encoding) ([]byte, error) {
	var p []byte
	switch enc {
	case UTF8:
		p = make([]byte, native.ByteLengthUTF8(s))
		p = p[:native.UTF8Write(p, s)]
	case UTF16LE:
		p = make([]byte, native.CodeUnits(s)*2)
		p = p[:native.UCS2Write(p, s)]
	case Latin1:
		p = make([]byte, native.CodeUnits(s))
		p = p[:native.Latin1Write(p, s, false)]
	default:
		return nil, errors.UnknownEncoding(errors.PhaseSearch, enc.String())
	}
	return p, nil
}

// IndexOf returns the first index of value at or after byteOffset, or -1.
// value is a string (encoded with enc), an integer byte, a []byte or a
// *Buffer. A negative offset counts from the end.
func (b *Buffer) IndexOf(value any, byteOffset Bound, enc Encoding) (int, error) {
	return b.bidirectionalIndexOf(value, byteOffset, enc, true)
}

// LastIndexOf returns the last index of value at or before byteOffset, or -1.
func (b *Buffer) LastIndexOf(value any, byteOffset Bound, enc Encoding) (int, error) {
	return b.bidirectionalIndexOf(value, byteOffset, enc, false)
}

// Includes reports whether value occurs in b at or after byteOffset.
func (b *Buffer) Includes(value any, byteOffset Bound, enc Encoding) (bool, error) {
	i, err := b.IndexOf(value, byteOffset, enc)
	return i >= 0, err
}

func (b *Buffer) bidirectionalIndexOf(value any, byteOffset Bound, enc Encoding, forward bool) (int, error) {
	var (
		needle []byte
		number bool
		byteV  int
	)
	switch v := value.(type) {
	case string:
		switch enc {
		case UTF8, UTF16LE, Latin1:
			p, err := encodeNeedle(v, enc)
			if err != nil {
				return 0, err
			}
			needle = p
		case ASCII:
			p, err := encodeNeedle(v, Latin1)
			if err != nil {
				return 0, err
			}
			needle = p
		default:
			nb, err := FromString(v, enc)
			if err != nil {
				return 0, err
			}
			needle = nb.Bytes()
		}
	case *Buffer:
		needle = v.Bytes()
	default:
		if n, ok := validate.CoerceToInt(value); ok {
			number, byteV = true, n
			break
		}
		p, err := validate.Buffer(value, "value")
		if err != nil {
			return 0, errors.TypeMismatch(errors.PhaseSearch, "value", "string, integer or buffer", value)
		}
		needle = p
	}

	needleLen := len(needle)
	if number {
		needleLen = 1
	}
	off, ok := indexOffset(b.length, byteOffset, needleLen, forward)
	if !ok {
		return -1, nil
	}
	if needleLen == 0 {
		return off, nil
	}
	if b.length == 0 {
		return -1, nil
	}
	if number {
		return IndexOfNumber(b, byteV, At(off), forward)
	}
	return IndexOfBuffer(b, From(needle), At(off), forward)
}

// indexOffset normalizes a possibly negative or out of range search offset.
// ok is false when no match is possible.
func indexOffset(size int, byteOffset Bound, needleLen int, forward bool) (int, bool) {
	off, set := byteOffset.Get()
	if !set {
		if forward {
			return 0, true
		}
		off = size
	}
	if off < 0 {
		switch {
		case off+size >= 0:
			return size + off, true
		case forward || needleLen == 0:
			return 0, true
		default:
			return 0, false
		}
	}
	switch {
	case off+needleLen <= size:
		return off, true
	case needleLen == 0:
		return size, true
	case forward:
		return 0, false
	default:
		return size - 1, true
	}
}
