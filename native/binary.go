package native

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"

	"github.com/dop251/base64dec"
)

// HexSlice returns the lowercase hex digits of src.
func HexSlice(src []byte) string {
	return hex.EncodeToString(src)
}

// HexWrite decodes hex digit pairs of s into dst. Decoding stops at the first
// invalid pair; an odd trailing digit is ignored.
func HexWrite(dst []byte, s string) int {
	n := min(len(s)/2, len(dst))
	if n == 0 {
		return 0
	}
	written, _ := hex.Decode(dst[:n], []byte(s[:2*n]))
	return written
}

// Base64Slice encodes src as padded standard Base64, or unpadded Base64URL
// when url is set.
func Base64Slice(src []byte, url bool) string {
	if url {
		return base64.RawURLEncoding.EncodeToString(src)
	}
	return base64.StdEncoding.EncodeToString(src)
}

// Base64Write decodes s into dst. Characters outside the alphabet selected by
// url are skipped, decoding stops at the first '=', and a dangling single
// character is dropped.
func Base64Write(dst []byte, s string, url bool) int {
	clean := cleanBase64(s, url)
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}
	if len(clean) == 0 || len(dst) == 0 {
		return 0
	}
	tmp := make([]byte, base64.RawStdEncoding.DecodedLen(len(clean)))
	n, _ := base64dec.DecodeBase64(tmp, string(clean))
	return copy(dst, tmp[:n])
}

func cleanBase64(s string, url bool) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			break
		}
		if inAlphabet(c, url) {
			out = append(out, c)
		}
	}
	return out
}

func inAlphabet(c byte, url bool) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case url:
		return c == '-' || c == '_'
	default:
		return c == '+' || c == '/'
	}
}

// Base64ByteLength estimates the decoded size of s. Up to two trailing '='
// are discounted.
func Base64ByteLength(s string) int {
	n := len(s)
	if n > 0 && s[n-1] == '=' {
		n--
		if n > 0 && s[n-1] == '=' {
			n--
		}
	}
	return n * 3 >> 2
}

// IsBase64String reports whether s is well-formed standard Base64: alphabet
// characters followed by at most two '=' that complete a multiple of four.
func IsBase64String(s string) bool {
	if len(s) == 0 {
		return true
	}
	pad := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			pad++
			continue
		}
		if pad > 0 || !inAlphabet(c, false) {
			return false
		}
	}
	if pad == 0 {
		return true
	}
	return pad <= 2 && pad < len(s) && len(s)%4 == 0
}

// Memcmp orders a and b bytewise.
func Memcmp(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Memmem returns the index of needle in haystack searching from offset,
// forward or backward, or -1. An empty needle matches at offset, clamped
// to the haystack length.
func Memmem(haystack, needle []byte, offset int, forward bool) int {
	if offset < 0 || offset > len(haystack) {
		return -1
	}
	if len(needle) == 0 {
		return offset
	}
	if forward {
		if i := bytes.Index(haystack[offset:], needle); i >= 0 {
			return i + offset
		}
		return -1
	}
	end := min(offset+len(needle), len(haystack))
	return bytes.LastIndex(haystack[:end], needle)
}

// Swap16 reverses the byte order of every 16-bit unit of p in place.
func Swap16(p []byte) {
	for i := 0; i+2 <= len(p); i += 2 {
		binary.LittleEndian.PutUint16(p[i:], binary.BigEndian.Uint16(p[i:]))
	}
}

// Swap32 reverses the byte order of every 32-bit unit of p in place.
func Swap32(p []byte) {
	for i := 0; i+4 <= len(p); i += 4 {
		binary.LittleEndian.PutUint32(p[i:], binary.BigEndian.Uint32(p[i:]))
	}
}

// Swap64 reverses the byte order of every 64-bit unit of p in place.
func Swap64(p []byte) {
	for i := 0; i+8 <= len(p); i += 8 {
		binary.LittleEndian.PutUint64(p[i:], binary.BigEndian.Uint64(p[i:]))
	}
}
