package dp

// ClimbStairs returns the number of distinct ways to reach step n
// taking 1 or 2 steps at a time: ways(n) = ways(n-1) + ways(n-2) with
// ways(1) = 1 and ways(2) = 2 — the Fibonacci recurrence shifted by
// one. Iterative, so no recursion depth to worry about. n ≤ 0 has zero
// ways.
// Complexity: O(n) time, O(1) memory.
func ClimbStairs(n int) int {
	if n <= 0 {
		return 0
	}
	if n <= 2 {
		return n
	}

	prev2, prev1 := 1, 2
	for i := 3; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}

	return prev1
}
