// Package sequence generates integer sequences — the Fibonacci family
// and factorials — with an explicit overflow policy.
//
// What
//
//   - FibonacciIterative(n): two-accumulator loop, O(n) time, O(1) space.
//   - FibonacciMemoized(n, cache): recursion with a caller-owned Cache;
//     each index is computed at most once, and the cache may be reused
//     across calls.
//   - FibonacciRecursive(n): the naive double recursion, kept as a
//     reference oracle for the other two; exponential time, so n is
//     capped at RecursiveMaxN.
//   - Sequence(n): the first n Fibonacci numbers.
//   - Factorial(n): iterative product with checked multiplication.
//
// Overflow policy
//
//	Results are uint64 and overflow is rejected, never wrapped silently:
//	any computation that would exceed uint64 returns ErrOverflow.
//	F(MaxFibonacci) = F(93) is the largest representable Fibonacci
//	number and MaxFactorial! = 20! the largest factorial.
//
// Contract
//
//	All three Fibonacci strategies agree bit-for-bit on their overlapping
//	domains; the test suite uses FibonacciRecursive as the oracle.
//
// Complexity
//
//   - FibonacciIterative / Sequence / Factorial: O(n) time, O(1)/O(n) space
//   - FibonacciMemoized: O(n) time and space on a cold cache, O(1) on hits
//   - FibonacciRecursive: O(φⁿ) time — reference only
//
// Usage
//
//	v, err := sequence.FibonacciIterative(90)
//
//	cache := sequence.NewCache()
//	a, _ := sequence.FibonacciMemoized(40, cache)
//	b, _ := sequence.FibonacciMemoized(41, cache) // one cache hit away
package sequence
