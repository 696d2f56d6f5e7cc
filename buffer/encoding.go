package buffer

import (
	"strconv"
	"strings"

	"github.com/wippyai/bytebuf/errors"
)

// Encoding identifies a byte to text transformation.
type Encoding uint8

const (
	UTF8 Encoding = iota
	ASCII
	Latin1
	UTF16LE
	Hex
	Base64
	Base64URL
)

var encodingNames = [...]string{
	UTF8:      "utf8",
	ASCII:     "ascii",
	Latin1:    "latin1",
	UTF16LE:   "utf16le",
	Hex:       "hex",
	Base64:    "base64",
	Base64URL: "base64url",
}

var encodingAliases = map[string]Encoding{
	"":          UTF8,
	"utf8":      UTF8,
	"utf-8":     UTF8,
	"ascii":     ASCII,
	"latin1":    Latin1,
	"binary":    Latin1,
	"utf16le":   UTF16LE,
	"utf-16le":  UTF16LE,
	"ucs2":      UTF16LE,
	"ucs-2":     UTF16LE,
	"hex":       Hex,
	"base64":    Base64,
	"base64url": Base64URL,
}

// ParseEncoding resolves an encoding name or alias, ignoring case.
// The empty name selects UTF8.
func ParseEncoding(name string) (Encoding, error) {
	if enc, ok := encodingAliases[strings.ToLower(name)]; ok {
		return enc, nil
	}
	return 0, errors.UnknownEncoding(errors.PhaseCodec, name)
}

// Encodings lists every supported encoding in declaration order.
func Encodings() []Encoding {
	return []Encoding{UTF8, ASCII, Latin1, UTF16LE, Hex, Base64, Base64URL}
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return "encoding(" + strconv.Itoa(int(e)) + ")"
}

// Valid reports whether e is one of the declared encodings.
func (e Encoding) Valid() bool {
	return int(e) < len(encodingNames)
}
