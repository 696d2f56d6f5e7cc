package buffer

import (
	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/internal/validate"
	"github.com/wippyai/bytebuf/native"
)

type codec struct {
	slice      func(src []byte) string
	write      func(dst []byte, s string) int
	byteLength func(s string) int
}

var codecs = map[Encoding]codec{
	ASCII: {
		slice:      func(src []byte) string { return native.Latin1Slice(src, true) },
		write:      func(dst []byte, s string) int { return native.Latin1Write(dst, s, true) },
		byteLength: native.CodeUnits,
	},
	Latin1: {
		slice:      func(src []byte) string { return native.Latin1Slice(src, false) },
		write:      func(dst []byte, s string) int { return native.Latin1Write(dst, s, false) },
		byteLength: native.CodeUnits,
	},
	UTF8: {
		slice:      native.UTF8Slice,
		write:      native.UTF8Write,
		byteLength: native.ByteLengthUTF8,
	},
	UTF16LE: {
		slice:      native.UCS2Slice,
		write:      native.UCS2Write,
		byteLength: func(s string) int { return native.CodeUnits(s) * 2 },
	},
	Hex: {
		slice:      native.HexSlice,
		write:      native.HexWrite,
		byteLength: func(s string) int { return len(s) >> 1 },
	},
	Base64: {
		slice:      func(src []byte) string { return native.Base64Slice(src, false) },
		write:      func(dst []byte, s string) int { return native.Base64Write(dst, s, false) },
		byteLength: native.Base64ByteLength,
	},
	Base64URL: {
		slice:      func(src []byte) string { return native.Base64Slice(src, true) },
		write:      func(dst []byte, s string) int { return native.Base64Write(dst, s, true) },
		byteLength: native.Base64ByteLength,
	},
}

func lookup(phase errors.Phase, enc Encoding) (codec, error) {
	c, ok := codecs[enc]
	if !ok {
		return codec{}, errors.UnknownEncoding(phase, enc.String())
	}
	return c, nil
}

// Slice decodes the bytes in [start, end) as text in enc. Bounds are clamped
// and an end before start yields "".
func (b *Buffer) Slice(enc Encoding, start, end Bound) (string, error) {
	c, err := lookup(errors.PhaseSlice, enc)
	if err != nil {
		return "", err
	}
	r := Resolve(b.length, start, end)
	if r.Len() == 0 {
		return "", nil
	}
	s := c.slice(b.Bytes()[r.Start:r.End])
	if len(s) > KStringMaxLength && native.CodeUnits(s) > KStringMaxLength {
		return "", errors.New(errors.PhaseSlice, errors.KindRangeViolation).
			Arg("end").
			Detail("text exceeds %d characters", KStringMaxLength).
			Build()
	}
	return s, nil
}

// Write encodes s with enc into the buffer at offset, writing at most length
// bytes. It returns the number of bytes written; an offset past the end
// writes nothing.
func (b *Buffer) Write(s string, enc Encoding, offset, length Bound) (int, error) {
	c, err := lookup(errors.PhaseWrite, enc)
	if err != nil {
		return 0, err
	}
	r, ok := resolveWrite(b.length, offset, length)
	if !ok || r.Len() == 0 || len(s) == 0 {
		return 0, nil
	}
	return c.write(b.Bytes()[r.Start:r.End], s), nil
}

// WriteAny is Write for dynamically typed arguments. v must be a string;
// offset and length are nil or non-negative integers.
func (b *Buffer) WriteAny(v, offset, length any, encoding string) (int, error) {
	s, err := validate.String(v, "string")
	if err != nil {
		return 0, err
	}
	enc, err := ParseEncoding(encoding)
	if err != nil {
		return 0, err
	}
	off, err := optionalIndex(offset, "offset")
	if err != nil {
		return 0, err
	}
	n, err := optionalIndex(length, "length")
	if err != nil {
		return 0, err
	}
	return b.Write(s, enc, off, n)
}

func optionalIndex(v any, arg string) (Bound, error) {
	if v == nil {
		return Unset, nil
	}
	if _, err := validate.Integer(v, arg); err != nil {
		return Unset, err
	}
	n, err := validate.IntegerInRange(v, arg, 0, KMaxLength)
	if err != nil {
		return Unset, err
	}
	return At(n), nil
}

// ByteLength returns the number of bytes s occupies in enc.
func ByteLength(s string, enc Encoding) (int, error) {
	c, err := lookup(errors.PhaseCodec, enc)
	if err != nil {
		return 0, err
	}
	return c.byteLength(s), nil
}

// ByteLengthUTF8 returns the UTF-8 length of s.
func ByteLengthUTF8(s string) int {
	return native.ByteLengthUTF8(s)
}

func (b *Buffer) ASCIISlice(start, end Bound) (string, error) {
	return b.Slice(ASCII, start, end)
}

func (b *Buffer) Latin1Slice(start, end Bound) (string, error) {
	return b.Slice(Latin1, start, end)
}

func (b *Buffer) UTF8Slice(start, end Bound) (string, error) {
	return b.Slice(UTF8, start, end)
}

func (b *Buffer) UCS2Slice(start, end Bound) (string, error) {
	return b.Slice(UTF16LE, start, end)
}

func (b *Buffer) HexSlice(start, end Bound) (string, error) {
	return b.Slice(Hex, start, end)
}

func (b *Buffer) Base64Slice(start, end Bound) (string, error) {
	return b.Slice(Base64, start, end)
}

func (b *Buffer) Base64URLSlice(start, end Bound) (string, error) {
	return b.Slice(Base64URL, start, end)
}

func (b *Buffer) ASCIIWrite(s string, offset, length Bound) (int, error) {
	return b.Write(s, ASCII, offset, length)
}

func (b *Buffer) Latin1Write(s string, offset, length Bound) (int, error) {
	return b.Write(s, Latin1, offset, length)
}

func (b *Buffer) UTF8Write(s string, offset, length Bound) (int, error) {
	return b.Write(s, UTF8, offset, length)
}

func (b *Buffer) UCS2Write(s string, offset, length Bound) (int, error) {
	return b.Write(s, UTF16LE, offset, length)
}

func (b *Buffer) HexWrite(s string, offset, length Bound) (int, error) {
	return b.Write(s, Hex, offset, length)
}

func (b *Buffer) Base64Write(s string, offset, length Bound) (int, error) {
	return b.Write(s, Base64, offset, length)
}

func (b *Buffer) Base64URLWrite(s string, offset, length Bound) (int, error) {
	return b.Write(s, Base64URL, offset, length)
}
