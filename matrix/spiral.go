package matrix

// SpiralOrder linearizes a rectangular matrix by peeling concentric
// rings clockwise: right along the top row, down the right column, left
// along the bottom row, up the left column, shrinking a boundary after
// each side. Every element appears exactly once, whether the matrix is
// square, wide, tall, a single row, or a single column. Empty input
// yields an empty slice.
// Complexity: O(r·c) time, O(r·c) output.
func SpiralOrder(m [][]int) []int {
	if len(m) == 0 || len(m[0]) == 0 {
		return []int{}
	}

	top, bottom := 0, len(m)-1
	left, right := 0, len(m[0])-1
	out := make([]int, 0, len(m)*len(m[0]))

	for top <= bottom && left <= right {
		// right along the top row
		for j := left; j <= right; j++ {
			out = append(out, m[top][j])
		}
		top++

		// down the right column
		for i := top; i <= bottom; i++ {
			out = append(out, m[i][right])
		}
		right--

		// left along the bottom row, unless the rows already crossed
		if top <= bottom {
			for j := right; j >= left; j-- {
				out = append(out, m[bottom][j])
			}
			bottom--
		}

		// up the left column, unless the columns already crossed
		if left <= right {
			for i := bottom; i >= top; i-- {
				out = append(out, m[i][left])
			}
			left++
		}
	}

	return out
}

// GenerateSpiral fills an n×n grid with 1..n² following the same
// clockwise ring traversal SpiralOrder reads in, making the two
// operations round-trip inverses. n ≤ 0 yields an empty matrix.
// Complexity: O(n²) time and memory.
func GenerateSpiral(n int) [][]int {
	if n <= 0 {
		return [][]int{}
	}

	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}

	top, bottom, left, right := 0, n-1, 0, n-1
	v := 1
	for top <= bottom && left <= right {
		for j := left; j <= right; j++ {
			grid[top][j] = v
			v++
		}
		top++

		for i := top; i <= bottom; i++ {
			grid[i][right] = v
			v++
		}
		right--

		if top <= bottom {
			for j := right; j >= left; j-- {
				grid[bottom][j] = v
				v++
			}
			bottom--
		}

		if left <= right {
			for i := bottom; i >= top; i-- {
				grid[i][left] = v
				v++
			}
			left++
		}
	}

	return grid
}
