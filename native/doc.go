// Package native holds the byte-level primitives behind the buffer package:
// per-encoding slice and write routines, memcmp and memmem equivalents,
// fixed-width byte swapping and validity detection.
//
// Functions here apply no range policy. Callers pass exactly the bytes to
// read or the destination to fill; writes return the number of bytes
// produced and never emit a partial character.
package native

// KMaxLength returns the largest byte length the provider can address.
func KMaxLength() int64 {
	return 1 << 32
}
