package sequence

import "math/bits"

// FibonacciIterative returns F(n) using two accumulators.
// Base cases F(0)=0, F(1)=1. The advancing sum is checked with a carry
// test, so the first non-representable index (94) yields ErrOverflow
// instead of a silent wrap.
// Complexity: O(n) time, O(1) memory.
func FibonacciIterative(n uint) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	var curr, next uint64 = 0, 1 // invariant: next ≥ curr
	for i := uint(2); i <= n; i++ {
		sum, carry := bits.Add64(curr, next, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		curr, next = next, sum
	}

	return next, nil
}

// FibonacciRecursive returns F(n) by naive double recursion.
// It exists as the reference oracle for the other strategies and is
// rejected with ErrTooLarge beyond RecursiveMaxN, where the exponential
// cost becomes impractical.
// Complexity: O(φⁿ) time, O(n) stack.
func FibonacciRecursive(n uint) (uint64, error) {
	if n > RecursiveMaxN {
		return 0, ErrTooLarge
	}

	return fibNaive(n), nil
}

// fibNaive is the textbook recurrence; safe below RecursiveMaxN.
func fibNaive(n uint) uint64 {
	if n < 2 {
		return uint64(n)
	}

	return fibNaive(n-1) + fibNaive(n-2)
}

// FibonacciMemoized returns F(n), consulting cache before recursing so
// each sub-index is computed at most once. A nil cache gets a private
// one scoped to this call; passing a caller-owned Cache across calls
// reuses earlier results. Indices beyond MaxFibonacci are rejected with
// ErrOverflow up front, which also bounds the recursion depth.
// Complexity: O(n) time and memory cold, O(1) per cached index.
func FibonacciMemoized(n uint, cache Cache) (uint64, error) {
	if n > MaxFibonacci {
		return 0, ErrOverflow
	}
	if cache == nil {
		cache = NewCache()
	}

	return fibMemo(n, cache), nil
}

// fibMemo performs the cached descent. All indices ≤ MaxFibonacci fit
// in uint64, so the additions cannot wrap.
func fibMemo(n uint, cache Cache) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if v, ok := cache[n]; ok {
		return v
	}
	v := fibMemo(n-1, cache) + fibMemo(n-2, cache)
	cache[n] = v

	return v
}

// Sequence returns the first n Fibonacci numbers, F(0)..F(n-1).
// n == 0 yields an empty slice; a request reaching past MaxFibonacci
// yields ErrOverflow.
// Complexity: O(n) time and memory.
func Sequence(n uint) ([]uint64, error) {
	if n == 0 {
		return []uint64{}, nil
	}
	if n-1 > MaxFibonacci {
		return nil, ErrOverflow
	}

	out := make([]uint64, 0, n)
	var curr, next uint64 = 0, 1
	for i := uint(0); i < n; i++ {
		out = append(out, curr)
		curr, next = next, curr+next
	}

	return out, nil
}
