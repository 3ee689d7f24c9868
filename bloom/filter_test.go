package bloom_test

import (
	"testing"

	"github.com/cocosearch/coco/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Id not yet added should return false
	assert.False(t, f.Test(391895))

	f.Add(391895)

	assert.True(t, f.Test(391895))
	assert.False(t, f.Test(522418))
}

func TestFilter_NegativeIDs(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10, 0.01)
	f.Add(-1)

	assert.True(t, f.Test(-1))
	assert.False(t, f.Test(1))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.Add(7)

	assert.True(t, f.Test(7))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	const numItems = 10000

	f := bloom.NewFilter(numItems, 0.01)
	for i := range numItems {
		f.Add(i * 7)
	}

	for i := range numItems {
		assert.True(t, f.Test(i*7), "id %d must be present", i*7)
	}
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.Add(i)
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(numItems + i) {
			falsePositives++
		}
	}

	// Allow 3x headroom over the configured rate.
	actual := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actual, fpRate*3, "false positive rate %.4f too high", actual)
}
