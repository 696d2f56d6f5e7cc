// Package buffer implements bounds-checked byte buffers: views over a
// bytebuf.Storage with per-encoding slice and write, comparison, search,
// pattern fill, byte swapping, copy and the atob/btoa helpers.
//
// Slice operations clamp their bounds. Write-oriented operations (fill,
// copy, compareOffset with explicit bounds) fail with a range error instead.
package buffer

import (
	"bytes"

	"github.com/wippyai/bytebuf"
	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/native"
)

// Buffer is a view of length bytes starting at offset within a storage.
// Buffers created over the same storage alias each other.
type Buffer struct {
	storage bytebuf.Storage
	offset  int
	length  int
}

func checkSize(size int) error {
	if size < 0 || size > KMaxLength {
		return errors.RangeViolation(errors.PhaseAlloc, "size", size, 0, KMaxLength)
	}
	return nil
}

// New returns a zero-filled buffer of size bytes on its own heap storage.
func New(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &Buffer{storage: bytebuf.NewHeap(size), length: size}, nil
}

// Alloc returns a buffer of size bytes filled with src. A nil src leaves it zeroed.
func Alloc(size int, src FillSource) (*Buffer, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if src != nil && size > 0 {
		if err := b.Fill(src, Unset, Unset); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// From returns a buffer holding a copy of data.
func From(data []byte) *Buffer {
	return &Buffer{storage: bytebuf.HeapOf(bytes.Clone(data)), length: len(data)}
}

// FromString encodes s with enc into a new buffer.
func FromString(s string, enc Encoding) (*Buffer, error) {
	size, err := ByteLength(s, enc)
	if err != nil {
		return nil, err
	}
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	n, err := b.Write(s, enc, Unset, Unset)
	if err != nil {
		return nil, err
	}
	b.length = n
	return b, nil
}

// View returns a buffer over length bytes of storage starting at offset.
func View(storage bytebuf.Storage, offset, length int) (*Buffer, error) {
	if storage == nil {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "nil storage")
	}
	size := storageSize(storage)
	if offset < 0 || offset > size {
		return nil, errors.RangeViolation(errors.PhaseAlloc, "offset", offset, 0, size)
	}
	if length < 0 || offset+length > size {
		return nil, errors.RangeViolation(errors.PhaseAlloc, "length", length, 0, size-offset)
	}
	return &Buffer{storage: storage, offset: offset, length: length}, nil
}

func storageSize(s bytebuf.Storage) int {
	if sz, ok := s.(bytebuf.Sizer); ok {
		return int(sz.Size())
	}
	return len(s.Bytes())
}

// Concat copies list into a new buffer of total bytes. An unset total is the
// sum of the lengths; a shorter total truncates and a longer one zero-pads.
func Concat(list []*Buffer, total Bound) (*Buffer, error) {
	size, ok := total.Get()
	if !ok {
		size = 0
		for _, b := range list {
			size += b.Len()
		}
	}
	out, err := New(size)
	if err != nil {
		return nil, err
	}
	dst := out.Bytes()
	pos := 0
	for _, b := range list {
		if pos >= len(dst) {
			break
		}
		pos += copy(dst[pos:], b.Bytes())
	}
	return out, nil
}

// Len returns the length of the view in bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Offset returns the view's start within its storage.
func (b *Buffer) Offset() int {
	return b.offset
}

// Storage returns the backing storage.
func (b *Buffer) Storage() bytebuf.Storage {
	return b.storage
}

// Bytes returns the viewed bytes. The slice aliases the storage and its
// capacity is capped at the view's end.
func (b *Buffer) Bytes() []byte {
	end := b.offset + b.length
	return b.storage.Bytes()[b.offset:end:end]
}

// Subarray returns an aliasing view of [start, end). Negative bounds count
// from the end; both are clamped to the view.
func (b *Buffer) Subarray(start, end Bound) *Buffer {
	rel := func(bd Bound, def int) int {
		n, ok := bd.Get()
		if !ok {
			return def
		}
		if n < 0 {
			n += b.length
		}
		return min(max(n, 0), b.length)
	}
	s := rel(start, 0)
	e := max(rel(end, b.length), s)
	return &Buffer{storage: b.storage, offset: b.offset + s, length: e - s}
}

// Equal reports whether b and other hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return Equal(b, other)
}

// String decodes the whole buffer as UTF-8.
func (b *Buffer) String() string {
	return native.UTF8Slice(b.Bytes())
}

// IsUTF8 reports whether the buffer holds valid UTF-8.
func IsUTF8(b *Buffer) bool {
	return native.IsUTF8(b.Bytes())
}

// IsASCII reports whether every byte of the buffer is below 0x80.
func IsASCII(b *Buffer) bool {
	return native.IsASCII(b.Bytes())
}
