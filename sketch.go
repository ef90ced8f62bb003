package hyperloglog

import (
	hllerrors "github.com/tamirms/hyperloglog/errors"
	intbits "github.com/tamirms/hyperloglog/internal/bits"
)

const (
	// MinPrecision and MaxPrecision bound the valid precision range.
	// Precision p gives 2^p registers; higher precision means lower
	// estimation error at the cost of more memory.
	MinPrecision = 4
	MaxPrecision = 16
)

// Sketch is a HyperLogLog cardinality estimator.
//
// Each register stores the maximum observed run length (lowest-set-bit
// position) for the substream of hashes routed to it; registers only ever
// grow. The zero value of Sketch is not usable: construct with New and free
// with Release.
//
// A Sketch is not safe for concurrent use. All methods assume exclusive
// access for the duration of the call.
type Sketch struct {
	registers []uint8
	precision uint8
	hash      Hash32
}

// New constructs a sketch with 2^precision zero-valued registers.
//
// Defaults are precision 10 (1024 registers, ~3.25% typical error) and the
// HashString hash; override with WithPrecision and WithHash. Returns
// ErrInvalidPrecision if the configured precision is outside
// [MinPrecision, MaxPrecision].
func New(opts ...Option) (*Sketch, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.precision < MinPrecision || cfg.precision > MaxPrecision {
		return nil, hllerrors.ErrInvalidPrecision
	}
	return &Sketch{
		registers: make([]uint8, 1<<cfg.precision),
		precision: cfg.precision,
		hash:      cfg.hash,
	}, nil
}

// Insert adds an element to the sketch.
//
// The element is hashed with the sketch's hash capability; the top precision
// bits of the hash select a register and the remaining bits determine a run
// length. The selected register is raised to the run length if it is below
// it, so inserting the same element (or any element with the same hash)
// again never changes the sketch. Insert performs no allocation.
func (s *Sketch) Insert(element []byte) error {
	if s == nil {
		return hllerrors.ErrNilSketch
	}
	if s.registers == nil {
		return hllerrors.ErrUninitialized
	}
	h := s.hash(element)
	idx := intbits.Index32(h, s.precision)
	if rank := intbits.Rank32(h, s.precision); rank > s.registers[idx] {
		s.registers[idx] = rank
	}
	return nil
}

// InsertString adds a string element to the sketch. Equivalent to
// Insert([]byte(element)).
func (s *Sketch) InsertString(element string) error {
	if s == nil {
		return hllerrors.ErrNilSketch
	}
	return s.Insert([]byte(element))
}

// Release frees the register array. After Release every operation on the
// sketch returns ErrUninitialized; calling Release a second time does too.
func (s *Sketch) Release() error {
	if s == nil {
		return hllerrors.ErrNilSketch
	}
	if s.registers == nil {
		return hllerrors.ErrUninitialized
	}
	s.registers = nil
	return nil
}

// Precision returns the sketch's configured precision.
func (s *Sketch) Precision() uint8 {
	return s.precision
}

// RegisterCount returns the number of registers, 2^precision.
func (s *Sketch) RegisterCount() int {
	return 1 << s.precision
}
