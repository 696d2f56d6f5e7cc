// Package memory exposes wazero linear memory as bytebuf.Storage so buffers
// can view guest memory directly.
package memory

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bytebuf/buffer"
	"github.com/wippyai/bytebuf/errors"
)

// Wrap adapts mem to bytebuf.Storage. It returns nil for a nil memory.
func Wrap(mem api.Memory) *Storage {
	if mem == nil {
		return nil
	}
	return &Storage{Mem: mem}
}

// Storage adapts wazero api.Memory to bytebuf.Storage. Bytes is re-read on
// every call, so views stay valid after the memory grows.
type Storage struct {
	Mem api.Memory
}

// Bytes returns the whole linear memory. Writes through the slice are
// visible to the guest.
func (s *Storage) Bytes() []byte {
	data, ok := s.Mem.Read(0, s.Mem.Size())
	if !ok {
		return nil
	}
	return data
}

// Size returns the memory size in bytes.
func (s *Storage) Size() uint64 {
	return uint64(s.Mem.Size())
}

// Range returns length bytes at offset, aliasing the memory.
func (s *Storage) Range(offset, length uint32) ([]byte, error) {
	data, ok := s.Mem.Read(offset, length)
	if !ok {
		return nil, errors.New(errors.PhaseHost, errors.KindRangeViolation).
			Value(offset).
			Detail("memory read out of bounds: offset=%d, length=%d", offset, length).
			Build()
	}
	return data, nil
}

// Buffer returns a buffer viewing length bytes at offset.
func (s *Storage) Buffer(offset, length uint32) (*buffer.Buffer, error) {
	if uint64(offset)+uint64(length) > uint64(s.Mem.Size()) {
		return nil, errors.New(errors.PhaseHost, errors.KindRangeViolation).
			Value(offset).
			Detail("memory view out of bounds: offset=%d, length=%d", offset, length).
			Build()
	}
	return buffer.View(s, int(offset), int(length))
}
