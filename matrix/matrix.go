package matrix

import "fmt"

// Transpose returns the c×r transpose of an r×c matrix:
// result[j][i] == m[i][j]. An empty matrix (no rows or zero-width
// rows) maps to an empty matrix. Transpose is its own inverse.
// Complexity: O(r·c) time and memory.
func Transpose(m [][]int) [][]int {
	if len(m) == 0 || len(m[0]) == 0 {
		return [][]int{}
	}

	rows, cols := len(m), len(m[0])
	result := make([][]int, cols)
	for j := range result {
		result[j] = make([]int, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result[j][i] = m[i][j]
		}
	}

	return result
}

// Multiply returns the product of an r×k matrix a and a k×c matrix b
// via the standard triple-nested loop. When cols(a) != rows(b) it
// returns ErrDimensionMismatch — never a truncated product. Two empty
// operands multiply to an empty matrix.
// Complexity: O(r·c·k).
func Multiply(a, b [][]int) ([][]int, error) {
	aCols := 0
	if len(a) > 0 {
		aCols = len(a[0])
	}
	if aCols != len(b) {
		return nil, fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch,
			len(a), aCols, len(b), width(b))
	}
	if len(a) == 0 {
		return [][]int{}, nil
	}

	rows, cols, inner := len(a), width(b), aCols
	result := make([][]int, rows)
	for i := 0; i < rows; i++ {
		result[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return result, nil
}

// width returns the column count of a possibly empty matrix.
func width(m [][]int) int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}
