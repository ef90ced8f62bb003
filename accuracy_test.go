package hyperloglog

import (
	"fmt"
	"math"
	"testing"
)

// TestAccuracyPrecision10 checks the empirical error distribution rather
// than a single estimate: 40 trials with independent seeded hash families,
// each inserting 3000 distinct elements into a precision-10 sketch
// (m = 1024, typical relative error 1.04/sqrt(1024) = 3.25%). The bounds
// below are several standard deviations loose so the test does not flake,
// while still catching a broken estimator (which is off by 2x or worse).
func TestAccuracyPrecision10(t *testing.T) {
	const (
		trials    = 40
		distinct  = 3000
		precision = 10
	)
	stddev := 1.04 / math.Sqrt(float64(uint64(1)<<precision))

	var sumErr, maxErr float64
	for trial := 0; trial < trials; trial++ {
		sketch, err := New(WithPrecision(precision), WithHash(SeededHash(uint64(trial))))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < distinct; i++ {
			// Insert every element twice; duplicates must not inflate
			// the estimate.
			elem := fmt.Sprintf("trial-%d-elem-%d", trial, i)
			if err := sketch.InsertString(elem); err != nil {
				t.Fatal(err)
			}
			if err := sketch.InsertString(elem); err != nil {
				t.Fatal(err)
			}
		}
		got, err := sketch.Count()
		if err != nil {
			t.Fatal(err)
		}
		relErr := math.Abs(float64(got)-distinct) / distinct
		sumErr += relErr
		if relErr > maxErr {
			maxErr = relErr
		}
	}

	meanErr := sumErr / trials
	t.Logf("mean relative error %.4f, max %.4f, expected stddev %.4f",
		meanErr, maxErr, stddev)
	if meanErr > 2*stddev {
		t.Errorf("mean relative error %.4f exceeds 2 stddev (%.4f)", meanErr, 2*stddev)
	}
	if maxErr > 6*stddev {
		t.Errorf("max relative error %.4f exceeds 6 stddev (%.4f)", maxErr, 6*stddev)
	}
}

// TestAccuracyAcrossPrecisions does a coarser sanity sweep: higher precision
// should keep a 10k-element estimate within a few expected standard
// deviations for each precision.
func TestAccuracyAcrossPrecisions(t *testing.T) {
	const distinct = 10000
	for _, p := range []uint8{8, 10, 12, 14} {
		p := p
		t.Run(fmt.Sprintf("precision=%d", p), func(t *testing.T) {
			sketch, err := New(WithPrecision(p), WithHash(HashXXH3))
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < distinct; i++ {
				if err := sketch.InsertString(fmt.Sprintf("elem-%d", i)); err != nil {
					t.Fatal(err)
				}
			}
			got, err := sketch.Count()
			if err != nil {
				t.Fatal(err)
			}
			stddev := 1.04 / math.Sqrt(float64(uint64(1)<<p))
			relErr := math.Abs(float64(got)-distinct) / distinct
			if relErr > 5*stddev {
				t.Errorf("estimate %d for %d distinct: relative error %.4f exceeds 5 stddev (%.4f)",
					got, distinct, relErr, 5*stddev)
			}
		})
	}
}
