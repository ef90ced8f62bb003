package hyperloglog

import (
	"math"

	hllerrors "github.com/tamirms/hyperloglog/errors"
	intbits "github.com/tamirms/hyperloglog/internal/bits"
)

// hashSpace is the size of the 32-bit hash value space, 2^32.
const hashSpace = float64(1) * (1 << intbits.HashWidth)

// alphaFor returns the bias-correction constant for m registers. The three
// small-m values are the empirically derived constants from the HyperLogLog
// paper; larger m uses the closed-form approximation.
func alphaFor(m int) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1 + 1.079/float64(m))
	}
}

// Count returns the estimated number of distinct elements inserted so far.
//
// Count is read-only and idempotent: with no intervening insertions or
// merges, repeated calls return the same value. The estimate follows the
// standard three regimes:
//
//  1. Small range: when the raw estimate is at or below 2.5*m and some
//     registers are still zero, linear counting (m * ln(m/V) over the V
//     zero registers) is more accurate and is returned instead.
//  2. Mid range: the raw harmonic-mean estimate alpha_m * m^2 / sum(2^-reg).
//  3. Large range: above 2^32/30 the raw estimate is corrected for hash
//     collisions as the 32-bit hash space saturates.
//
// The result is rounded to the nearest integer.
func (s *Sketch) Count() (uint64, error) {
	if s == nil {
		return 0, hllerrors.ErrNilSketch
	}
	if s.registers == nil {
		return 0, hllerrors.ErrUninitialized
	}

	m := len(s.registers)

	// Harmonic sum over every register. Zero registers contribute 2^0 = 1;
	// skipping any register biases the estimate downward.
	var sum float64
	for _, reg := range s.registers {
		sum += math.Ldexp(1, -int(reg))
	}
	estimate := alphaFor(m) * float64(m) * float64(m) / sum

	// The threshold is 2.5*m exactly; compare in floating point.
	if estimate <= 2.5*float64(m) {
		zeros := 0
		for _, reg := range s.registers {
			if reg == 0 {
				zeros++
			}
		}
		if zeros > 0 {
			estimate = float64(m) * math.Log(float64(m)/float64(zeros))
		}
	} else if estimate > hashSpace/30 {
		estimate = -hashSpace * math.Log(1-estimate/hashSpace)
	}

	return uint64(math.Round(estimate)), nil
}
