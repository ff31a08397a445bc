// Package sequence declares error sentinels, capacity bounds, and the
// memoization Cache.
package sequence

import "errors"

// Capacity bounds implied by the uint64 result type and the reference
// oracle's cost model.
const (
	// MaxFibonacci is the largest index whose Fibonacci number fits in
	// uint64: F(93) = 12200160415121876738.
	MaxFibonacci = 93

	// MaxFactorial is the largest n with n! representable in uint64:
	// 20! = 2432902008176640000.
	MaxFactorial = 20

	// RecursiveMaxN caps FibonacciRecursive; beyond ~40 the exponential
	// reference implementation stops being practical.
	RecursiveMaxN = 40
)

var (
	// ErrOverflow is returned when a result would exceed uint64.
	// Overflow is rejected, never wrapped or saturated.
	ErrOverflow = errors.New("sequence: result overflows uint64")

	// ErrTooLarge is returned by FibonacciRecursive for n > RecursiveMaxN.
	ErrTooLarge = errors.New("sequence: index too large for recursive strategy")
)

// Cache memoizes Fibonacci values by index. It is owned by the caller:
// pass the same Cache to successive FibonacciMemoized calls to reuse
// previously computed indices. The engine only reads and inserts; it
// never invalidates entries.
type Cache map[uint]uint64

// NewCache returns an empty memoization cache.
func NewCache() Cache {
	return make(Cache)
}
