package hyperloglog

import (
	hllerrors "github.com/tamirms/hyperloglog/errors"
)

// Merge folds src into s by taking the pointwise maximum of the two register
// arrays. Afterwards s estimates the cardinality of the union of both
// streams, as if every element of both had been inserted into s. src is not
// modified. Merging a sketch with itself is a no-op.
//
// If the precisions differ, only the overlapping index range
// [0, min(mDest, mSrc)) is reconciled and the rest of the larger array is
// left alone. This is lossy: the result does NOT correctly union the
// underlying streams unless both sketches share the same precision. Callers
// that need a correct union must construct their sketches with equal
// precision (and the same hash).
func (s *Sketch) Merge(src *Sketch) error {
	if s == nil || src == nil {
		return hllerrors.ErrNilSketch
	}
	if s.registers == nil || src.registers == nil {
		return hllerrors.ErrUninitialized
	}
	n := min(len(s.registers), len(src.registers))
	for i := 0; i < n; i++ {
		if src.registers[i] > s.registers[i] {
			s.registers[i] = src.registers[i]
		}
	}
	return nil
}
