// Package dp collects classic dynamic-programming routines. Every table
// lives only for the duration of one call: allocated, filled bottom-up,
// optionally walked backward once, and discarded.
//
// What
//
//   - LCS(s1, s2): longest common subsequence with string
//     reconstruction from the (m+1)×(n+1) length table.
//   - CoinChange(coins, amount): minimum coins to reach amount;
//     -1 means "no combination" — a valid answer, not an error.
//   - MaxSubarray(nums): maximum contiguous sum via Kadane's single
//     pass; an empty slice is rejected with ErrEmptyInput.
//   - ClimbStairs(n): distinct ways to climb n steps taking 1 or 2 at a
//     time — the Fibonacci-shifted recurrence, iterated in O(1) space.
//
// Reconstruction rules (LCS)
//
//	Backtracking from (m,n) prefers the diagonal move when the current
//	characters match; otherwise it follows the larger neighbor, and on
//	ties moves up — consuming s1. This yields one deterministic LCS out
//	of the possibly many.
//
// Complexity
//
//   - LCS:         O(m·n) time and memory
//   - CoinChange:  O(amount·len(coins)) time, O(amount) memory
//   - MaxSubarray: O(n) time, O(1) memory
//   - ClimbStairs: O(n) time, O(1) memory
//
// Usage
//
//	dp.LCS("ABCDGH", "AEDFHR")          // "ADH"
//	dp.CoinChange([]int{1, 2, 5}, 11)   // 3  (5+5+1)
//	dp.CoinChange([]int{2}, 3)          // -1 (unreachable)
//	sum, err := dp.MaxSubarray(nums)
//	dp.ClimbStairs(5)                   // 8
package dp
