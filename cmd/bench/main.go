// Bench is a benchmarking tool for measuring sketch accuracy, insert
// throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -n 1000000 -precision 12 -trials 8 -workers 4
//	go run ./cmd/bench -precision 14 -input /data/urls.txt
//
// Flags:
//
//	-n          Distinct elements generated per trial (default: 1,000,000)
//	-precision  Sketch precision in [4,16] (default: 12)
//	-trials     Trials with independent hash seeds (default: 8)
//	-workers    Parallel trial workers (default: GOMAXPROCS)
//	-hash       seeded, djb2, xxh3, xxhash or murmur3 (default: seeded)
//	-input      Newline-delimited element file; replaces generated trials
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/hyperloglog"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

func hashFor(name string, seed uint64) (hyperloglog.Hash32, error) {
	switch name {
	case "seeded":
		return hyperloglog.SeededHash(seed), nil
	case "djb2":
		return hyperloglog.HashString, nil
	case "xxh3":
		return hyperloglog.HashXXH3, nil
	case "xxhash":
		return hyperloglog.HashXX, nil
	case "murmur3":
		return hyperloglog.HashMurmur3, nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}

func main() {
	nFlag := flag.Int("n", 1_000_000, "distinct elements per trial")
	precisionFlag := flag.Uint("precision", 12, "sketch precision (4-16)")
	trialsFlag := flag.Int("trials", 8, "trials with independent hash seeds")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "parallel trial workers")
	hashFlag := flag.String("hash", "seeded", "hash: seeded, djb2, xxh3, xxhash or murmur3")
	inputFlag := flag.String("input", "", "newline-delimited element file")
	flag.Parse()

	precision := uint8(*precisionFlag)

	if *inputFlag != "" {
		if err := runFile(*inputFlag, precision, *hashFlag); err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}
		return
	}
	if err := runTrials(*nFlag, precision, *hashFlag, *trialsFlag, *workersFlag); err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}
}

// runTrials inserts n generated distinct elements per trial and reports the
// relative error distribution across trials. Trials run in parallel; each
// sketch is confined to its own goroutine.
func runTrials(n int, precision uint8, hashName string, trials, workers int) error {
	fmt.Printf("Running %d trials: %d distinct elements, precision %d, hash %s...\n",
		trials, n, precision, hashName)

	relErrs := make([]float64, trials)
	insertDurations := make([]time.Duration, trials)

	if workers < 1 {
		workers = 1
	}
	start := time.Now()
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for trial := 0; trial < trials; trial++ {
		g.Go(func() error {
			hash, err := hashFor(hashName, uint64(trial)+1)
			if err != nil {
				return err
			}
			sketch, err := hyperloglog.New(
				hyperloglog.WithPrecision(precision),
				hyperloglog.WithHash(hash),
			)
			if err != nil {
				return err
			}
			defer sketch.Release()

			insertStart := time.Now()
			var elem []byte
			for i := 0; i < n; i++ {
				elem = fmt.Appendf(elem[:0], "trial-%d-element-%d", trial, i)
				if err := sketch.Insert(elem); err != nil {
					return err
				}
			}
			insertDurations[trial] = time.Since(insertStart)

			estimate, err := sketch.Count()
			if err != nil {
				return err
			}
			relErr := (float64(estimate) - float64(n)) / float64(n)
			relErrs[trial] = relErr
			fmt.Printf("  trial %2d: expected %d, estimated %d (%+.3f%%)\n",
				trial, n, estimate, 100*relErr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	total := time.Since(start)

	var sumAbs, maxAbs float64
	var sumInsert time.Duration
	for trial, relErr := range relErrs {
		abs := relErr
		if abs < 0 {
			abs = -abs
		}
		sumAbs += abs
		if abs > maxAbs {
			maxAbs = abs
		}
		sumInsert += insertDurations[trial]
	}
	insertsPerSec := float64(n) * float64(trials) / total.Seconds()

	fmt.Println()
	fmt.Printf("Mean |error|:   %.3f%% (expected ~%.3f%% at this precision)\n",
		100*sumAbs/float64(trials), 100*1.04/math.Sqrt(float64(uint64(1)<<precision)))
	fmt.Printf("Max |error|:    %.3f%%\n", 100*maxAbs)
	fmt.Printf("Insert rate:    %.1f M elements/sec (aggregate)\n", insertsPerSec/1e6)
	fmt.Printf("Insert time:    %v mean per trial\n",
		(sumInsert / time.Duration(trials)).Round(time.Millisecond))
	fmt.Printf("Wall time:      %v\n", total.Round(time.Millisecond))
	fmt.Printf("Register bytes: %d per sketch\n", 1<<precision)
	fmt.Printf("Peak RSS:       %.1f MiB\n", float64(getMaxRSS())/(1<<20))
	return nil
}

// runFile maps the input file read-only, advises the kernel of sequential
// access, and feeds every newline-delimited element to one sketch. The
// exact distinct count is tracked in a map for comparison, so this mode
// needs memory proportional to the distinct elements (it exists to measure
// the sketch, not to replace it).
func runFile(path string, precision uint8, hashName string) error {
	hash, err := hashFor(hashName, 1)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap input file: %w", err)
	}
	defer mm.Unmap()
	fadviseSequential(int(f.Fd()), int64(len(mm)))

	sketch, err := hyperloglog.New(
		hyperloglog.WithPrecision(precision),
		hyperloglog.WithHash(hash),
	)
	if err != nil {
		return err
	}
	defer sketch.Release()

	fmt.Printf("Counting distinct lines of %s (%.1f MiB, precision %d)...\n",
		path, float64(len(mm))/(1<<20), precision)

	exact := make(map[string]struct{})
	start := time.Now()
	data := []byte(mm)
	var total uint64
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		if len(line) == 0 {
			continue
		}
		if err := sketch.Insert(line); err != nil {
			return err
		}
		exact[string(line)] = struct{}{}
		total++
	}
	elapsed := time.Since(start)

	estimate, err := sketch.Count()
	if err != nil {
		return err
	}
	expected := uint64(len(exact))
	relErr := (float64(estimate) - float64(expected)) / float64(expected)

	fmt.Printf("Lines:     %d (%d distinct)\n", total, expected)
	fmt.Printf("Estimate:  %d (%+.3f%%)\n", estimate, 100*relErr)
	fmt.Printf("Rate:      %.1f M lines/sec\n", float64(total)/elapsed.Seconds()/1e6)
	fmt.Printf("Wall time: %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("Peak RSS:  %.1f MiB\n", float64(getMaxRSS())/(1<<20))
	return nil
}
