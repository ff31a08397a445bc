// Package prime provides prime-number utilities: a primality predicate,
// bulk enumeration via the Sieve of Eratosthenes, factorization by
// repeated division, and twin-prime detection.
//
// What
//
//   - IsPrime(n): trial division by odd candidates up to √n. Total —
//     n < 2 is simply false, never an error.
//   - Sieve(limit): all primes ≤ limit in ascending order. A limit below
//     2 (zero and negatives included) yields an empty slice.
//   - Factorize(n): prime factors in non-decreasing order with
//     multiplicity; Factorize(1) is empty, n < 1 is ErrNonPositive.
//   - Twins(limit): consecutive primes ≤ limit differing by exactly 2,
//     derived from the sieve.
//
// Why
//
//   - The sieve enumerates a full range in O(limit·log log limit),
//     beating per-number trial division for bulk queries.
//   - Factorization by dividing out 2 and then odd candidates while
//     candidate² ≤ remainder leaves at most one prime > √n, appended
//     last.
//
// Invariants
//
//   - Every value in Sieve(limit) satisfies IsPrime, and no prime
//     ≤ limit is missing.
//   - The product of Factorize(n) reconstructs n for every n ≥ 2.
//
// Usage
//
//	prime.IsPrime(97)        // true
//	prime.Sieve(50)          // [2 3 5 7 11 ... 47]
//	prime.Factorize(315)     // [3 3 5 7], nil
//	prime.Twins(100)         // [{3 5} {5 7} {11 13} ...]
package prime
