package hyperloglog

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hash32 maps an element to a 32-bit hash. It is the capability a sketch
// invokes on every insertion; any function with near-uniform output bits
// satisfies the contract.
type Hash32 func(element []byte) uint32

// HashString is the default hash: the classic djb2 string hash (seed 5381,
// hash = hash*33 + byte per input byte).
//
// It is cheap and dependency-free but noticeably weaker than HashXXH3 or
// HashMurmur3 on structured input (sequential integers, common prefixes).
// Prefer one of the adapter hashes for accuracy-sensitive workloads; djb2
// remains the default for compatibility with existing deployments.
func HashString(element []byte) uint32 {
	h := uint32(5381)
	for _, b := range element {
		h = h*33 + uint32(b)
	}
	return h
}

// HashXXH3 hashes with xxHash3, truncated to 32 bits.
func HashXXH3(element []byte) uint32 {
	return uint32(xxh3.Hash(element))
}

// HashXX hashes with xxHash64, truncated to 32 bits.
func HashXX(element []byte) uint32 {
	return uint32(xxhash.Sum64(element))
}

// HashMurmur3 hashes with 32-bit MurmurHash3.
func HashMurmur3(element []byte) uint32 {
	return murmur3.Sum32(element)
}

// SeededHash returns a Hash32 backed by seeded xxHash3. Distinct seeds give
// independent hash families, which is what repeated accuracy trials and
// per-shard sketches want.
func SeededHash(seed uint64) Hash32 {
	return func(element []byte) uint32 {
		return uint32(xxh3.HashSeed(element, seed))
	}
}
