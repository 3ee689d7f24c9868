// Package bloom provides image-id membership tests using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed by image id.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected ids
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an id to the filter.
func (f *Filter) Add(id int) {
	f.f.Add(key(id))
}

// Test returns true if the id might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id int) bool {
	return f.f.Test(key(id))
}

func key(id int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(int64(id)))
	return b[:]
}
