package buffer

import (
	"math"

	"github.com/wippyai/bytebuf/native"
)

// KStringMaxLength is the longest text, in UTF-16 code units, a slice may produce.
const KStringMaxLength = (1 << 29) - 24

// KMaxLength is the largest buffer size New, Alloc and Concat accept.
var KMaxLength = int(min(int64(math.MaxInt), native.KMaxLength()))

// Limits groups the read-only size limits.
type Limits struct {
	MaxLength       int
	MaxStringLength int
}

// DefaultLimits returns the process-wide limits.
func DefaultLimits() Limits {
	return Limits{
		MaxLength:       KMaxLength,
		MaxStringLength: KStringMaxLength,
	}
}
