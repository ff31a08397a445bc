package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranspose_Basic flips a 2×3 matrix.
func TestTranspose_Basic(t *testing.T) {
	m := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	want := [][]int{
		{1, 4},
		{2, 5},
		{3, 6},
	}
	assert.Equal(t, want, matrix.Transpose(m))
}

// TestTranspose_Involution: transposing twice restores the original.
func TestTranspose_Involution(t *testing.T) {
	cases := [][][]int{
		{{1}},
		{{1, 2, 3}},
		{{1}, {2}, {3}},
		{{1, 2}, {3, 4}},
		{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}},
	}
	for _, m := range cases {
		assert.Equal(t, m, matrix.Transpose(matrix.Transpose(m)))
	}
}

// TestTranspose_Empty maps empty to empty.
func TestTranspose_Empty(t *testing.T) {
	assert.Equal(t, [][]int{}, matrix.Transpose([][]int{}))
	assert.Equal(t, [][]int{}, matrix.Transpose(nil))
}

// TestMultiply_Basic computes a 2×2 product.
func TestMultiply_Basic(t *testing.T) {
	a := [][]int{
		{1, 2},
		{3, 4},
	}
	b := [][]int{
		{5, 6},
		{7, 8},
	}
	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{19, 22}, {43, 50}}, got)
}

// TestMultiply_Rectangular computes a 2×3 × 3×2 product.
func TestMultiply_Rectangular(t *testing.T) {
	a := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	b := [][]int{
		{7, 8},
		{9, 10},
		{11, 12},
	}
	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{58, 64}, {139, 154}}, got)
}

// TestMultiply_Identity leaves the operand unchanged.
func TestMultiply_Identity(t *testing.T) {
	a := [][]int{
		{2, -1},
		{0, 3},
	}
	id := [][]int{
		{1, 0},
		{0, 1},
	}
	got, err := matrix.Multiply(a, id)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

// TestMultiply_IncompatibleDimensions: a 2×3 times a 2×2 must error,
// never return a value.
func TestMultiply_IncompatibleDimensions(t *testing.T) {
	a := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	b := [][]int{
		{1, 2},
		{3, 4},
	}
	got, err := matrix.Multiply(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Nil(t, got, "no partial product on mismatch")
}

// TestMultiply_Empty: two empty operands multiply to an empty matrix;
// an empty against a non-empty one is a mismatch.
func TestMultiply_Empty(t *testing.T) {
	got, err := matrix.Multiply([][]int{}, [][]int{})
	require.NoError(t, err)
	assert.Equal(t, [][]int{}, got)

	_, err = matrix.Multiply([][]int{}, [][]int{{1, 2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
