// Package prime declares the error sentinel and the twin-prime Pair.
package prime

import "errors"

// ErrNonPositive is returned by Factorize for n < 1; zero and negative
// numbers have no prime factorization.
var ErrNonPositive = errors.New("prime: factorization requires n ≥ 1")

// Pair is a twin-prime pair: two primes with Q = P + 2.
type Pair struct {
	P int64
	Q int64
}
