package buffer

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/internal/validate"
	"github.com/wippyai/bytebuf/native"
)

// FillSource produces the pattern replicated by Fill. It is implemented by
// the values returned from Byte, Bytes and Text.
type FillSource interface {
	pattern() ([]byte, error)
}

type byteSource int

type bytesSource []byte

type textSource struct {
	s   string
	enc Encoding
}

// Byte fills with the low eight bits of v; negative values wrap.
func Byte(v int) FillSource {
	return byteSource(v)
}

// Bytes fills with a copy of p. An empty p is rejected by Fill.
func Bytes(p []byte) FillSource {
	return bytesSource(p)
}

// Text fills with s encoded as enc. The empty string fills with zero.
func Text(s string, enc Encoding) FillSource {
	return textSource{s: s, enc: enc}
}

func (v byteSource) pattern() ([]byte, error) {
	return []byte{byte(v)}, nil
}

func (p bytesSource) pattern() ([]byte, error) {
	if len(p) == 0 {
		return nil, errors.LengthPrecondition(errors.PhaseFill, "fill pattern is empty")
	}
	return bytes.Clone(p), nil
}

func (t textSource) pattern() ([]byte, error) {
	c, err := lookup(errors.PhaseFill, t.enc)
	if err != nil {
		return nil, err
	}
	if t.s == "" {
		return []byte{0}, nil
	}
	var size int
	switch t.enc {
	case ASCII, Latin1:
		size = native.CodeUnits(t.s)
	case UTF8:
		size = native.ByteLengthUTF8(t.s)
	case UTF16LE:
		size = native.CodeUnits(t.s) * 2
	case Base64, Base64URL:
		size = (len(t.s)*3 + 3) / 4
	case Hex:
		size = (len(t.s) + 1) / 2
	}
	p := make([]byte, size)
	n := c.write(p, t.s)
	if n == 0 {
		return []byte{0}, nil
	}
	return p[:n], nil
}

// Fill replicates src across [offset, end). Unlike Slice, out of range bounds
// fail and leave the buffer untouched.
func (b *Buffer) Fill(src FillSource, offset, end Bound) error {
	off, e := offset.or(0), end.or(b.length)
	if off < 0 {
		return b.fillError(errors.RangeViolation(errors.PhaseFill, "offset", off, 0, b.length))
	}
	if e > b.length {
		return b.fillError(errors.RangeViolation(errors.PhaseFill, "end", e, 0, b.length))
	}
	if off > e {
		return b.fillError(errors.RangeViolation(errors.PhaseFill, "offset", off, 0, e))
	}
	if src == nil {
		return b.fillError(errors.InvalidInput(errors.PhaseFill, "nil fill source"))
	}
	p, err := src.pattern()
	if err != nil {
		return b.fillError(err)
	}
	if off == e {
		return nil
	}

	target := b.Bytes()[off:e]
	n := copy(target, p)
	for n < len(target) {
		n += copy(target[n:], target[:n])
	}
	return nil
}

func (b *Buffer) fillError(err error) error {
	Logger().Debug("fill rejected", zap.Int("length", b.length), zap.Error(err))
	return err
}

// FillValue fills [offset, end) with a dynamically typed value: an integer or
// float (truncated toward zero), a bool, a string encoded with the named
// encoding, a []byte or a *Buffer.
func (b *Buffer) FillValue(v any, offset, end Bound, encoding string) error {
	var src FillSource
	switch x := v.(type) {
	case string:
		enc, err := ParseEncoding(encoding)
		if err != nil {
			return b.fillError(err)
		}
		src = Text(x, enc)
	case *Buffer:
		src = Bytes(x.Bytes())
	case []byte:
		src = Bytes(x)
	case bool:
		if x {
			src = Byte(1)
		} else {
			src = Byte(0)
		}
	default:
		n, ok := validate.Truncate(v)
		if !ok {
			return b.fillError(errors.TypeMismatch(errors.PhaseFill, "value", "string, number or buffer", v))
		}
		src = Byte(int(n & 0xFF))
	}
	return b.Fill(src, offset, end)
}
