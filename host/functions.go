package host

import (
	"context"

	"github.com/wippyai/bytebuf/buffer"
	"github.com/wippyai/bytebuf/memory"
)

var functions = []function{
	// (enc, str_ptr, str_len) -> byte length
	{name: "byte_length", params: 3, fn: byteLength},
	// (enc, src_ptr, src_len, dst_ptr, dst_cap) -> text length
	{name: "encode", params: 5, fn: encode},
	// (enc, str_ptr, str_len, dst_ptr, dst_len) -> bytes written
	{name: "decode", params: 5, fn: decode},
	// (a_ptr, a_len, b_ptr, b_len, out_ptr) -> status
	{name: "compare", params: 5, fn: compare},
	// (h_ptr, h_len, n_ptr, n_len, offset, forward, out_ptr) -> status
	{name: "index_of", params: 7, fn: indexOf},
	// (ptr, len, pat_ptr, pat_len, offset, end) -> status
	{name: "fill", params: 6, fn: fill},
	// (src_ptr, src_len, dst_ptr, dst_len) -> bytes copied
	{name: "copy", params: 4, fn: copyBytes},
	{name: "swap16", params: 2, fn: swapper(16)},
	{name: "swap32", params: 2, fn: swapper(32)},
	{name: "swap64", params: 2, fn: swapper(64)},
	{name: "is_utf8", params: 2, fn: detector(buffer.IsUTF8)},
	{name: "is_ascii", params: 2, fn: detector(buffer.IsASCII)},
}

func byteLength(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	enc, err := encodingOf(args[0])
	if err != nil {
		return 0, err
	}
	s, err := text(mem, args[1], args[2])
	if err != nil {
		return 0, err
	}
	n, err := buffer.ByteLength(s, enc)
	return int32(n), err
}

func encode(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	enc, err := encodingOf(args[0])
	if err != nil {
		return 0, err
	}
	src, err := view(mem, args[1], args[2])
	if err != nil {
		return 0, err
	}
	s, err := src.Slice(enc, buffer.Unset, buffer.Unset)
	if err != nil {
		return 0, err
	}
	dst, err := mem.Range(uint32(args[3]), uint32(args[4]))
	if err != nil {
		return 0, err
	}
	if len(s) > len(dst) {
		return 0, errShortDestination
	}
	return int32(copy(dst, s)), nil
}

func decode(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	enc, err := encodingOf(args[0])
	if err != nil {
		return 0, err
	}
	s, err := text(mem, args[1], args[2])
	if err != nil {
		return 0, err
	}
	dst, err := view(mem, args[3], args[4])
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(s, enc, buffer.Unset, buffer.Unset)
	return int32(n), err
}

func compare(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	a, err := view(mem, args[0], args[1])
	if err != nil {
		return 0, err
	}
	b, err := view(mem, args[2], args[3])
	if err != nil {
		return 0, err
	}
	return 0, store(mem, args[4], int32(buffer.Compare(a, b)))
}

func indexOf(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	h, err := view(mem, args[0], args[1])
	if err != nil {
		return 0, err
	}
	n, err := view(mem, args[2], args[3])
	if err != nil {
		return 0, err
	}
	offset := buffer.Unset
	if args[4] >= 0 {
		offset = buffer.At(int(args[4]))
	}
	i, err := buffer.IndexOfBuffer(h, n, offset, args[5] != 0)
	if err != nil {
		return 0, err
	}
	return 0, store(mem, args[6], int32(i))
}

func fill(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	b, err := view(mem, args[0], args[1])
	if err != nil {
		return 0, err
	}
	pattern, err := mem.Range(uint32(args[2]), uint32(args[3]))
	if err != nil {
		return 0, err
	}
	return 0, b.Fill(buffer.Bytes(pattern), buffer.At(int(args[4])), buffer.At(int(args[5])))
}

func copyBytes(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
	src, err := view(mem, args[0], args[1])
	if err != nil {
		return 0, err
	}
	dst, err := view(mem, args[2], args[3])
	if err != nil {
		return 0, err
	}
	n, err := buffer.Copy(src, dst, buffer.Unset, buffer.Unset, buffer.Unset)
	return int32(n), err
}

func swapper(bits int) handler {
	return func(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
		b, err := view(mem, args[0], args[1])
		if err != nil {
			return 0, err
		}
		return 0, b.Swap(bits)
	}
}

func detector(fn func(*buffer.Buffer) bool) handler {
	return func(_ context.Context, mem *memory.Storage, args []int32) (int32, error) {
		b, err := view(mem, args[0], args[1])
		if err != nil {
			return 0, err
		}
		if fn(b) {
			return 1, nil
		}
		return 0, nil
	}
}
