package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wippyai/bytebuf/buffer"
)

type options struct {
	from, to   string
	swap       int
	find       string
	atob, btoa bool
}

func run(input string, opts options) (string, error) {
	switch {
	case opts.atob && opts.btoa:
		return "", errors.New("-atob and -btoa are exclusive")
	case opts.atob:
		out, code := buffer.Atob(input)
		if code != buffer.OK {
			return "", fmt.Errorf("atob: %s", atobReason(code))
		}
		return out, nil
	case opts.btoa:
		out, code := buffer.Btoa(input)
		if code != buffer.OK {
			return "", errors.New("btoa: input has characters above U+00FF")
		}
		return out, nil
	}

	from, err := buffer.ParseEncoding(opts.from)
	if err != nil {
		return "", err
	}
	if opts.find != "" {
		i, err := find(input, opts.find, from)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(i), nil
	}
	to, err := buffer.ParseEncoding(opts.to)
	if err != nil {
		return "", err
	}
	return convert(input, from, to, opts.swap)
}

func atobReason(code buffer.Sentinel) string {
	if code == buffer.InvalidChar {
		return "invalid character"
	}
	return "invalid length"
}

// convert decodes input as from, optionally swaps byte order, and encodes the
// bytes as to.
func convert(input string, from, to buffer.Encoding, swap int) (string, error) {
	b, err := buffer.FromString(input, from)
	if err != nil {
		return "", err
	}
	if swap != 0 {
		if err := b.Swap(swap); err != nil {
			return "", err
		}
	}
	return b.Slice(to, buffer.Unset, buffer.Unset)
}

// find returns the byte index of needle in input, both decoded as enc.
func find(input, needle string, enc buffer.Encoding) (int, error) {
	b, err := buffer.FromString(input, enc)
	if err != nil {
		return 0, err
	}
	return b.IndexOf(needle, buffer.Unset, enc)
}

type rendering struct {
	enc buffer.Encoding
	out string
	err error
}

// renderAll shows input, decoded as from, in every encoding.
func renderAll(input string, from buffer.Encoding, swap int) []rendering {
	encs := buffer.Encodings()
	out := make([]rendering, len(encs))
	for i, enc := range encs {
		s, err := convert(input, from, enc, swap)
		out[i] = rendering{enc: enc, out: s, err: err}
	}
	return out
}
