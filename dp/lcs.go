package dp

// LCS returns one longest common subsequence of s1 and s2, operating on
// runes. The (m+1)×(n+1) table holds LCS lengths of prefixes:
// a character match extends the diagonal, a mismatch takes the larger
// of the two neighbors. Reconstruction walks the table from (m,n) back
// to the origin, preferring the diagonal on matches and the larger
// neighbor otherwise, ties toward consuming s1.
// Either input empty yields "".
// Complexity: O(m·n) time and memory.
func LCS(s1, s2 string) string {
	r1, r2 := []rune(s1), []rune(s2)
	m, n := len(r1), len(r2)
	if m == 0 || n == 0 {
		return ""
	}

	// fill the prefix-length table bottom-up
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case r1[i-1] == r2[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}

	// backtrack once, collecting matched characters in reverse
	out := make([]rune, 0, table[m][n])
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case r1[i-1] == r2[j-1]:
			out = append(out, r1[i-1])
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i-- // tie: consume s1
		default:
			j--
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}
