// Package matrix provides transformations of rectangular integer
// matrices in row-major [][]int form: transpose, multiplication, and
// spiral traversal in both directions.
//
// What
//
//   - Transpose(m): the c×r mirror of an r×c matrix.
//   - Multiply(a, b): the standard triple-loop product; incompatible
//     shapes are reported as ErrDimensionMismatch, never truncated.
//   - SpiralOrder(m): linearizes a matrix by peeling concentric rings
//     clockwise — right along the top row, down the right column, left
//     along the bottom row, up the left column — shrinking the
//     boundaries after each side.
//   - GenerateSpiral(n): the inverse — an n×n grid filled 1..n² in that
//     same traversal order.
//
// Round trip
//
//	SpiralOrder(GenerateSpiral(n)) == [1, 2, ..., n²] for every n ≥ 1.
//
// Edge cases
//
//	An empty matrix (zero rows, or rows of zero length) is valid input
//	everywhere and maps to an empty result. Square, wide, tall, 1-row
//	and 1-column matrices all spiral correctly. Callers supply
//	rectangular input; ragged rows are not detected.
//
// Complexity
//
//	All operations are O(r·c), except Multiply at O(r·c·k).
//
// Usage
//
//	t := matrix.Transpose([][]int{{1, 2, 3}, {4, 5, 6}})
//	p, err := matrix.Multiply(a, b) // errors.Is(err, matrix.ErrDimensionMismatch)
//	s := matrix.SpiralOrder(grid)
//	g := matrix.GenerateSpiral(4)
package matrix
