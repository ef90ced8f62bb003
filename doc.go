// Package hyperloglog estimates the number of distinct elements in a data
// stream using bounded, sub-linear memory.
//
// A Sketch holds 2^precision one-byte registers. Each inserted element is
// hashed to a 32-bit value; the top precision bits pick a register and the
// remaining bits contribute a run-length observation. The cardinality
// estimate is derived from the harmonic mean of the registers with the
// standard three-regime bias correction (linear counting for small
// cardinalities, raw estimate in the middle, hash-saturation correction near
// 2^32). A sketch with precision p uses 2^p bytes of register storage and
// has a typical relative error of about 1.04/sqrt(2^p).
//
// # Basic Usage
//
//	sketch, err := hyperloglog.New(hyperloglog.WithPrecision(12))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sketch.Release()
//
//	for _, line := range lines {
//	    if err := sketch.InsertString(line); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	distinct, err := sketch.Count()
//
// Sketches built from disjoint shards of a stream can be combined with
// Merge; the merged sketch estimates the cardinality of the union.
//
// # Package Structure
//
//   - Public API: sketch.go (New, Insert, Release), estimate.go (Count),
//     merge.go (Merge)
//   - Configuration: options.go (Option, With* functions)
//   - Hashing: hash.go (Hash32 capability, default and adapter hashes)
//   - Bit arithmetic: internal/bits (register index and rank extraction)
//   - Errors: errors/ (exported sentinels, Describe)
//
// The package performs no internal synchronization: a Sketch assumes
// exclusive access for the duration of each call. Callers sharing a sketch
// across goroutines must serialize access externally.
package hyperloglog
