package buffer

import (
	"fmt"

	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/native"
)

func (b *Buffer) checkSwap(unit int) error {
	if b.length%unit != 0 {
		return errors.New(errors.PhaseSwap, errors.KindLengthPrecondition).
			Value(b.length).
			Detail("buffer size must be a multiple of %d-bits", unit*8).
			Build()
	}
	return nil
}

// Swap16 reverses the byte order of each 16-bit unit in place.
func (b *Buffer) Swap16() error {
	if err := b.checkSwap(2); err != nil {
		return err
	}
	native.Swap16(b.Bytes())
	return nil
}

// Swap32 reverses the byte order of each 32-bit unit in place.
func (b *Buffer) Swap32() error {
	if err := b.checkSwap(4); err != nil {
		return err
	}
	native.Swap32(b.Bytes())
	return nil
}

// Swap64 reverses the byte order of each 64-bit unit in place.
func (b *Buffer) Swap64() error {
	if err := b.checkSwap(8); err != nil {
		return err
	}
	native.Swap64(b.Bytes())
	return nil
}

// Swap dispatches on a unit width of 16, 32 or 64 bits.
func (b *Buffer) Swap(bits int) error {
	switch bits {
	case 16:
		return b.Swap16()
	case 32:
		return b.Swap32()
	case 64:
		return b.Swap64()
	}
	return errors.InvalidInput(errors.PhaseSwap, fmt.Sprintf("unsupported swap width %d", bits))
}
