package native

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// CodeUnits returns the UTF-16 length of s. Runes above U+FFFF count as two
// units and each invalid byte counts as one U+FFFD.
func CodeUnits(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// forEachUnit calls fn with every UTF-16 code unit of s until fn returns false.
func forEachUnit(s string, fn func(u uint16) bool) {
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			if !fn(uint16(0xD800 + (r >> 10))) {
				return
			}
			if !fn(uint16(0xDC00 + (r & 0x3FF))) {
				return
			}
			continue
		}
		if !fn(uint16(r)) {
			return
		}
	}
}

// Latin1Slice maps each byte to the rune of the same value. With ascii set
// the top bit is cleared first.
func Latin1Slice(src []byte, ascii bool) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, c := range src {
		if ascii {
			c &= 0x7f
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Latin1Write stores the low byte of each UTF-16 code unit of s into dst.
// With ascii set the top bit is cleared.
func Latin1Write(dst []byte, s string, ascii bool) int {
	n := 0
	forEachUnit(s, func(u uint16) bool {
		if n >= len(dst) {
			return false
		}
		c := byte(u)
		if ascii {
			c &= 0x7f
		}
		dst[n] = c
		n++
		return true
	})
	return n
}

// UTF8Slice decodes src, replacing each maximal invalid subpart with U+FFFD.
func UTF8Slice(src []byte) string {
	if utf8.Valid(src) {
		return string(src)
	}
	var b strings.Builder
	b.Grow(len(src) + 8)
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			i += invalidSubpart(src[i:])
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// invalidSubpart returns the length of the maximal ill-formed prefix of p,
// which is at least one byte.
func invalidSubpart(p []byte) int {
	lo, hi, need := byte(0x80), byte(0xBF), 0
	switch c := p[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		lo, need = 0xA0, 2
	case c == 0xED:
		hi, need = 0x9F, 2
	case c >= 0xE1 && c <= 0xEF:
		need = 2
	case c == 0xF0:
		lo, need = 0x90, 3
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	case c == 0xF4:
		hi, need = 0x8F, 3
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(p); n++ {
		if p[n] < lo || p[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

// UTF8Write encodes s into dst, stopping before any character that does not
// fit. Invalid bytes in s are written as U+FFFD.
func UTF8Write(dst []byte, s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		w := size
		if r == utf8.RuneError && size == 1 {
			w = utf8.RuneLen(utf8.RuneError)
		}
		if n+w > len(dst) {
			break
		}
		if w == size {
			copy(dst[n:], s[i:i+size])
		} else {
			utf8.EncodeRune(dst[n:], utf8.RuneError)
		}
		n += w
		i += size
	}
	return n
}

// ByteLengthUTF8 returns the number of bytes UTF8Write needs for s.
func ByteLengthUTF8(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			n += utf8.RuneLen(utf8.RuneError)
		} else {
			n += size
		}
		i += size
	}
	return n
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UCS2Slice decodes src as UTF-16LE. A trailing odd byte is dropped and
// unpaired surrogates become U+FFFD.
func UCS2Slice(src []byte) string {
	src = src[:len(src)&^1]
	if len(src) == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(src)
	if err != nil {
		return ""
	}
	return string(out)
}

// UCS2Write encodes s as UTF-16LE into dst, writing whole code units only.
func UCS2Write(dst []byte, s string) int {
	if len(s) == 0 || len(dst) < 2 {
		return 0
	}
	out, err := utf16le.NewEncoder().String(s)
	if err != nil {
		return 0
	}
	return copy(dst[:len(dst)&^1], out)
}

// IsUTF8 reports whether p is valid UTF-8.
func IsUTF8(p []byte) bool {
	return utf8.Valid(p)
}

// IsASCII reports whether every byte of p is below 0x80.
func IsASCII(p []byte) bool {
	for _, c := range p {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsLatin1String reports whether every character of s is at most U+00FF.
func IsLatin1String(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
