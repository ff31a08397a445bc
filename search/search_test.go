package search_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/search"
	"github.com/stretchr/testify/assert"
)

// TestBinary_HitsAndMisses covers both halves, the ends, and absent
// targets on a fixed sorted fixture.
func TestBinary_HitsAndMisses(t *testing.T) {
	sorted := []int{1, 3, 5, 7, 9, 11, 13}

	for i, v := range sorted {
		idx, ok := search.Binary(sorted, v)
		assert.Truef(t, ok, "Binary(%v, %d)", sorted, v)
		assert.Equalf(t, i, idx, "Binary(%v, %d)", sorted, v)
	}

	for _, v := range []int{0, 2, 8, 14, -5} {
		idx, ok := search.Binary(sorted, v)
		assert.Falsef(t, ok, "Binary(%v, %d)", sorted, v)
		assert.Zerof(t, idx, "index must be 0 on a miss")
	}
}

// TestBinary_Degenerate: empty and single-element inputs.
func TestBinary_Degenerate(t *testing.T) {
	_, ok := search.Binary(nil, 42)
	assert.False(t, ok)

	idx, ok := search.Binary([]int{42}, 42)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = search.Binary([]int{42}, 7)
	assert.False(t, ok)
}

// TestBinary_AgreesWithLinearScan cross-checks against the obvious
// implementation on a dense fixture.
func TestBinary_AgreesWithLinearScan(t *testing.T) {
	sorted := make([]int, 0, 50)
	for v := 0; v < 100; v += 2 {
		sorted = append(sorted, v)
	}

	for target := -1; target <= 100; target++ {
		wantIdx, wantOK := -1, false
		for i, v := range sorted {
			if v == target {
				wantIdx, wantOK = i, true
				break
			}
		}

		idx, ok := search.Binary(sorted, target)
		assert.Equalf(t, wantOK, ok, "Binary(sorted, %d) found", target)
		if wantOK {
			assert.Equalf(t, wantIdx, idx, "Binary(sorted, %d) index", target)
		}
	}
}

// TestFindMissing recovers each possible absentee of a 1..n permutation.
func TestFindMissing(t *testing.T) {
	assert.Equal(t, 3, search.FindMissing([]int{1, 2, 4, 5}))
	assert.Equal(t, 1, search.FindMissing([]int{2, 3, 4}))
	assert.Equal(t, 4, search.FindMissing([]int{1, 2, 3}))
	assert.Equal(t, 1, search.FindMissing(nil), "empty input means {1} lost its element")

	// Order must not matter.
	assert.Equal(t, 5, search.FindMissing([]int{4, 1, 3, 6, 2, 7}))
}

// TestContainsDuplicate covers the duplicate, distinct, and trivial cases.
func TestContainsDuplicate(t *testing.T) {
	assert.True(t, search.ContainsDuplicate([]int{1, 2, 3, 1}))
	assert.True(t, search.ContainsDuplicate([]int{7, 7}))
	assert.False(t, search.ContainsDuplicate([]int{1, 2, 3, 4}))
	assert.False(t, search.ContainsDuplicate([]int{5}))
	assert.False(t, search.ContainsDuplicate(nil))
}
