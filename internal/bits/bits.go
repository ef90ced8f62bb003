// Package bits provides low-level bit manipulation primitives.
package bits

import "math/bits"

// HashWidth is the width in bits of the hash values consumed by the sketch.
const HashWidth = 32

// Index32 returns the register index selected by the top p bits of h.
// The result is in [0, 2^p).
func Index32(h uint32, p uint8) uint32 {
	return h >> (HashWidth - p)
}

// Rank32 returns the 1-based position of the lowest set bit in the
// observation field of h, which is the low 32-p bits left after the index
// bits are removed. A field of all zeros yields the cap value 32-p+1, the
// longest run representable at this precision.
func Rank32(h uint32, p uint8) uint8 {
	obs := h & (1<<(HashWidth-p) - 1)
	if obs == 0 {
		return HashWidth - p + 1
	}
	return uint8(bits.TrailingZeros32(obs)) + 1
}
