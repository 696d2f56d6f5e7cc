package buffer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/bytebuf/native"
)

// Sentinel is the result code of Atob and Btoa. They report malformed input
// through it instead of an error.
type Sentinel int

const (
	OK          Sentinel = 0
	BadLength   Sentinel = -1 // atob: impossible length
	InvalidChar Sentinel = -2 // atob: character outside the Base64 alphabet
	NotLatin1   Sentinel = -1 // btoa: character above U+00FF
)

func isASCIIWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func removeWhitespace(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return r < 0x80 && isASCIIWhitespace(byte(r)) }) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isASCIIWhitespace(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Atob decodes standard Base64 into a Latin1 string. ASCII whitespace is
// ignored and padding is optional.
func Atob(s string) (string, Sentinel) {
	s = removeWhitespace(s)

	units := native.CodeUnits(s)
	if strings.IndexByte(s, '=') >= 0 {
		if units%4 != 0 {
			return atobFail(BadLength)
		}
	} else {
		switch units % 4 {
		case 1:
			return atobFail(BadLength)
		case 2:
			s += "=="
		case 3:
			s += "="
		}
	}
	if !native.IsBase64String(s) {
		return atobFail(InvalidChar)
	}

	out := make([]byte, native.Base64ByteLength(s))
	n := native.Base64Write(out, s, false)
	return native.Latin1Slice(out[:n], false), OK
}

func atobFail(code Sentinel) (string, Sentinel) {
	Logger().Debug("atob rejected input", zap.Int("code", int(code)))
	return "", code
}

// Btoa encodes a Latin1 string as padded standard Base64.
func Btoa(s string) (string, Sentinel) {
	if !native.IsLatin1String(s) {
		Logger().Debug("btoa rejected input", zap.Int("code", int(NotLatin1)))
		return "", NotLatin1
	}
	p := make([]byte, native.CodeUnits(s))
	n := native.Latin1Write(p, s, false)
	return native.Base64Slice(p[:n], false), OK
}
