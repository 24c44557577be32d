package buddy

import (
	"github.com/cznic/mathutil"
)

// nextPow2 returns the smallest power of two that is >= n. n must be
// <= 1<<31; callers are only ever asked for arena and block sizes far
// below that.
func nextPow2(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	// Log2Uint32 returns floor(log2(n)); bumping the exponent by one
	// after subtracting 1 from n gives the ceiling power of two, and
	// leaves exact powers of two unchanged.
	return 1 << (mathutil.Log2Uint32(n-1) + 1)
}

// isPowerOfTwo reports whether n is an exact power of two.
func isPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}
