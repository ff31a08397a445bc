package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpiralOrder_Wide peels a 3×4 matrix clockwise.
func TestSpiralOrder_Wide(t *testing.T) {
	m := [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	want := []int{1, 2, 3, 4, 8, 12, 11, 10, 9, 5, 6, 7}
	assert.Equal(t, want, matrix.SpiralOrder(m))
}

// TestSpiralOrder_Tall peels a 4×2 matrix clockwise.
func TestSpiralOrder_Tall(t *testing.T) {
	m := [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
		{7, 8},
	}
	want := []int{1, 2, 4, 6, 8, 7, 5, 3}
	assert.Equal(t, want, matrix.SpiralOrder(m))
}

// TestSpiralOrder_Degenerate covers 1-row, 1-column, 1×1, and empty.
func TestSpiralOrder_Degenerate(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, matrix.SpiralOrder([][]int{{1, 2, 3}}))
	assert.Equal(t, []int{1, 2, 3}, matrix.SpiralOrder([][]int{{1}, {2}, {3}}))
	assert.Equal(t, []int{7}, matrix.SpiralOrder([][]int{{7}}))
	assert.Equal(t, []int{}, matrix.SpiralOrder([][]int{}))
	assert.Equal(t, []int{}, matrix.SpiralOrder(nil))
}

// TestSpiralOrder_EachElementOnce verifies coverage without omission or
// repetition on a square matrix.
func TestSpiralOrder_EachElementOnce(t *testing.T) {
	m := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	got := matrix.SpiralOrder(m)
	require.Len(t, got, 9)

	seen := make(map[int]bool, 9)
	for _, v := range got {
		assert.Falsef(t, seen[v], "element %d emitted twice", v)
		seen[v] = true
	}
}

// TestGenerateSpiral_4 pins the canonical 4×4 spiral grid.
func TestGenerateSpiral_4(t *testing.T) {
	want := [][]int{
		{1, 2, 3, 4},
		{12, 13, 14, 5},
		{11, 16, 15, 6},
		{10, 9, 8, 7},
	}
	assert.Equal(t, want, matrix.GenerateSpiral(4))
}

// TestGenerateSpiral_Degenerate covers n ≤ 1.
func TestGenerateSpiral_Degenerate(t *testing.T) {
	assert.Equal(t, [][]int{{1}}, matrix.GenerateSpiral(1))
	assert.Equal(t, [][]int{}, matrix.GenerateSpiral(0))
	assert.Equal(t, [][]int{}, matrix.GenerateSpiral(-3))
}

// TestSpiral_RoundTrip: reading a generated spiral back in spiral order
// recovers the counting sequence 1..n².
func TestSpiral_RoundTrip(t *testing.T) {
	for n := 1; n <= 12; n++ {
		got := matrix.SpiralOrder(matrix.GenerateSpiral(n))
		require.Lenf(t, got, n*n, "n=%d", n)
		for i, v := range got {
			assert.Equalf(t, i+1, v, "n=%d position %d", n, i)
		}
	}
}
